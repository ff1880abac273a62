package seed_test

import (
	"context"
	"testing"

	"github.com/blogly-app/blogly_backend/internal/config"
	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
	"github.com/blogly-app/blogly_backend/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	db, err := config.InitDB(&config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", DBName: ":memory:", LogLevel: "silent"},
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	require.NoError(t, seed.Run(context.Background(), repository.NewTransactor(db)))

	var users []models.User
	require.NoError(t, db.Order("id ASC").Find(&users).Error)
	require.Len(t, users, len(seed.Users))
	assert.Equal(t, models.DefaultImageURL, users[0].ImageURL)
	assert.Equal(t, seed.Users[1].ImageURL, users[1].ImageURL)

	var posts, tags, postTags int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	require.NoError(t, db.Model(&models.PostTag{}).Count(&postTags).Error)
	assert.Equal(t, int64(len(seed.Posts)), posts)
	assert.Equal(t, int64(3), tags)
	assert.Equal(t, int64(4), postTags)

	// 2回目はタグ名の一意制約に触れず、既存タグを再利用する
	require.NoError(t, seed.Run(context.Background(), repository.NewTransactor(db)))
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Equal(t, int64(3), tags)
}
