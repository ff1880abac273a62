package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURLOrDefault(t *testing.T) {
	assert.Equal(t, DefaultImageURL, ImageURLOrDefault(""))
	assert.Equal(t, DefaultImageURL, ImageURLOrDefault(" \t"))
	assert.Equal(t, "https://example.com/a.png", ImageURLOrDefault(" https://example.com/a.png "))
}

func TestUserBeforeSave(t *testing.T) {
	u := &User{FirstName: "Alan", LastName: "Alda"}
	assert.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, DefaultImageURL, u.ImageURL)
	assert.Equal(t, "Alan Alda", u.FullName())
}

func TestPostHelpers(t *testing.T) {
	p := Post{Tags: []Tag{{ID: 1, Name: "fun"}, {ID: 3, Name: "sql"}}}
	assert.Zero(t, p.OwnerID())
	assert.True(t, p.HasTag(3))
	assert.False(t, p.HasTag(2))

	userID := uint(7)
	p.UserID = &userID
	assert.Equal(t, uint(7), p.OwnerID())
}
