package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSource(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"IMG_0001.heic", true},
		{"IMG_0001.HEIC", true},
		{"IMG_0001.Heif", true},
		{"photo.jpg", false},
		{"photo.jpeg", false},
		{"archive.heic.zip", false},
		{"noext", false},
		{"/abs/path/shot.heif", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsSource(tc.path), tc.path)
	}
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"IMG_0001.heic", "IMG_0001.jpg"},
		{"IMG_0001.HEIC", "IMG_0001.jpg"},
		{"/photos/trip/shot.heif", "/photos/trip/shot.jpg"},
		{"dotted.name.heic", "dotted.name.jpg"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TargetPath(tc.src), tc.src)
	}
}

func TestJPEGSiblings(t *testing.T) {
	got := JPEGSiblings("/p/IMG_1.heic")
	assert.Equal(t, []string{"/p/IMG_1.jpg", "/p/IMG_1.jpeg"}, got)
}
