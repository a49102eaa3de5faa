package service

import (
	"path/filepath"
	"strings"
)

// Common image and video container formats accepted for upload.
var allowedExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "bmp": {}, "webp": {},
	"mp4": {}, "mov": {}, "avi": {}, "mkv": {}, "webm": {},
}

// AllowedFile reports whether the filename carries an allowed extension.
func AllowedFile(filename string) bool {
	ext := FileExtension(filename)
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}

// FileExtension returns the lowercased extension without the dot.
func FileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SanitizeFilename strips path components and characters unsafe for a
// storage key, keeping the original name recognizable.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}
