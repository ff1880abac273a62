package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{
		"user_listing.html", "user_new.html", "user_detail.html", "user_edit.html",
		"post_new.html", "post_detail.html", "post_edit.html",
		"tag_listing.html", "tag_new.html", "tag_detail.html", "tag_edit.html",
		"error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestErrorTemplate(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "error.html", map[string]interface{}{
		"Title":      "Not Found",
		"View":       "error",
		"Status":     404,
		"StatusText": "Not Found",
		"Message":    "<script>",
	}))
	assert.Contains(t, buf.String(), `data-view="error"`)
	assert.Contains(t, buf.String(), "404 Not Found")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestFormatTime(t *testing.T) {
	assert.Empty(t, formatTime(time.Time{}))
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "Tue Mar 5, 2024, 2:07 PM", formatTime(ts))
}
