package domain

import (
	"path/filepath"
	"strings"
)

// NoExtension is the extension recorded for names without a dot.
const NoExtension = "no extension"

type ImageFile struct {
	Path string
	Name string
	Ext  string
}

func NewImageFile(path string) ImageFile {
	return ImageFile{
		Path: path,
		Name: filepath.Base(path),
		Ext:  Extension(path),
	}
}

// Extension returns the lower-cased text after the final dot of path.
func Extension(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx == -1 {
		return NoExtension
	}
	return strings.ToLower(path[idx+1:])
}

func IsImageExtension(path string) bool {
	switch Extension(path) {
	case "png", "jpg", "jpeg":
		return true
	default:
		return false
	}
}

func IsJpegExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return true
	default:
		return false
	}
}
