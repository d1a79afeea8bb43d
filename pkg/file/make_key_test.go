package file

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestMakeVideoKey(t *testing.T) {
	key := MakeVideoKey("short-videos", "some-id")
	assert.Regexp(t, regexp.MustCompile(`^short-videos/\d+-some-id\.mp4$`), key)
}

func TestMakeCoverKey(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantExt     string
	}{
		{"jpeg", "image/jpeg", "jpg"},
		{"png", "image/png", "png"},
		{"png with charset", "image/png; charset=binary", "png"},
		{"unknown defaults to jpg", "application/octet-stream", "jpg"},
		{"empty defaults to jpg", "", "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := MakeCoverKey("covers", "some-id", tt.contentType)
			assert.Regexp(t, regexp.MustCompile(`^covers/\d+-some-id\.`+tt.wantExt+`$`), key)
		})
	}
}

func TestExtensionFromContentType(t *testing.T) {
	assert.Equal(t, "jpg", ExtensionFromContentType("image/jpeg"))
	assert.Equal(t, "webp", ExtensionFromContentType("image/webp"))
	assert.Equal(t, "mp4", ExtensionFromContentType("video/mp4"))
	assert.Equal(t, "bin", ExtensionFromContentType("application/zip"))
}
