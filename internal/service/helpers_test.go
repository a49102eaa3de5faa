package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	allowed := []string{
		"photo.png", "photo.jpg", "photo.jpeg", "photo.gif", "photo.bmp",
		"photo.webp", "clip.mp4", "clip.mov", "clip.avi", "clip.mkv",
		"clip.webm", "SHOUTY.PNG", "Mixed.Mp4", "many.dots.in.name.jpeg",
	}
	for _, name := range allowed {
		require.True(t, AllowedFile(name), "expected %q to be allowed", name)
	}

	rejected := []string{
		"", "noextension", "archive.zip", "script.sh", "page.html",
		"trailingdot.", "double..", ".hidden",
	}
	for _, name := range rejected {
		require.False(t, AllowedFile(name), "expected %q to be rejected", name)
	}
}

func TestFileExtension(t *testing.T) {
	require.Equal(t, "mp4", FileExtension("video.MP4"))
	require.Equal(t, "jpeg", FileExtension("a.b.c.JPEG"))
	require.Equal(t, "", FileExtension("plain"))
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "my_photo.png", SanitizeFilename("my photo.png"))
	require.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	require.Equal(t, "clean-name_1.jpg", SanitizeFilename("clean-name_1.jpg"))
	require.Equal(t, "weird.png", SanitizeFilename("we$ird%.png"))
}
