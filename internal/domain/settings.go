package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultInsertText  = "_fix"
	DefaultJPEGQuality = 90
)

// Scaler names the interpolation used when stretching an image onto its square canvas.
type Scaler string

const (
	ScalerNearest    Scaler = "nearest"
	ScalerBilinear   Scaler = "bilinear"
	ScalerCatmullRom Scaler = "catmullrom"
)

func ParseScaler(name string) (Scaler, error) {
	switch s := Scaler(strings.ToLower(strings.TrimSpace(name))); s {
	case ScalerNearest, ScalerBilinear, ScalerCatmullRom:
		return s, nil
	case "":
		return ScalerBilinear, nil
	default:
		return "", fmt.Errorf("unknown scaler %q, use nearest, bilinear or catmullrom", name)
	}
}

// Settings is the user-selected behaviour for one execution.
type Settings struct {
	SourceDir       string
	ResultDir       string
	ShouldRename    bool
	RenameConverted bool
	InsertText      string
	InsertAsPrefix  bool
	Scaler          Scaler
	JPEGQuality     int
	PreserveTime    bool
}

// DefaultSettings mirrors the behaviour a fresh session starts with.
func DefaultSettings(dir string) Settings {
	return Settings{
		SourceDir:       dir,
		ResultDir:       dir,
		ShouldRename:    true,
		RenameConverted: true,
		InsertText:      DefaultInsertText,
		Scaler:          ScalerBilinear,
		JPEGQuality:     DefaultJPEGQuality,
		PreserveTime:    true,
	}
}

// Rename inserts the configured text before or after the base name of fileName.
func (s Settings) Rename(fileName string) string {
	name, ext := fileName, ""
	if idx := strings.LastIndex(fileName, "."); idx != -1 {
		name, ext = fileName[:idx], fileName[idx:]
	}
	if s.InsertAsPrefix {
		return s.InsertText + name + ext
	}
	return name + s.InsertText + ext
}

// ReplacesOriginals is true when converted files overwrite their sources.
func (s Settings) ReplacesOriginals() bool {
	return !s.ShouldRename && s.SourceDir == s.ResultDir
}

// DescribeBehavior explains to the user what an execution with these settings will do.
func (s Settings) DescribeBehavior() string {
	var b strings.Builder
	if s.ReplacesOriginals() {
		b.WriteString("• Replacing originals with converted screenshots")
	} else {
		b.WriteString("• Making copies of converted screenshots")
	}
	b.WriteString("\n")
	if !s.ShouldRename {
		return b.String()
	}

	position := "suffix"
	if s.InsertAsPrefix {
		position = "prefix"
	}
	target := "original image"
	example := "original.png"
	if s.RenameConverted {
		target = "converted image"
		example = "converted.png"
	}
	fmt.Fprintf(&b, "• Adding %s %q to %s\n", position, s.InsertText, target)
	fmt.Fprintf(&b, "• Ex: %q -> %q", example, s.Rename(example))
	return b.String()
}

// Targets returns where the converted copy of fileName is written and, when the
// original is renamed instead, the new path of the original. renamedOriginal is
// empty when the original stays where it is.
func (s Settings) Targets(fileName string) (converted, renamedOriginal string) {
	converted = filepath.Join(s.ResultDir, fileName)
	if !s.ShouldRename {
		return converted, ""
	}
	if s.RenameConverted {
		return filepath.Join(s.ResultDir, s.Rename(fileName)), ""
	}
	return converted, filepath.Join(s.SourceDir, s.Rename(fileName))
}
