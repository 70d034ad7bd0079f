package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename(t *testing.T) {
	s := Settings{InsertText: "_fix"}
	assert.Equal(t, "shot_fix.png", s.Rename("shot.png"))
	assert.Equal(t, "my.shot_fix.jpg", s.Rename("my.shot.jpg"))

	s.InsertAsPrefix = true
	assert.Equal(t, "_fixshot.png", s.Rename("shot.png"))
}

func TestRenameRoundTrip(t *testing.T) {
	names := []string{"a.png", "Screenshot 2024.JPG", "x.y.jpeg", ".png"}
	texts := []string{"_fix", "pre-", "A1_b2-C3"}

	for _, prefix := range []bool{true, false} {
		for _, text := range texts {
			require.NoError(t, ValidateInsertText(text))
			s := Settings{InsertText: text, InsertAsPrefix: prefix}
			for _, name := range names {
				renamed := s.Rename(name)
				var restored string
				if prefix {
					require.True(t, strings.HasPrefix(renamed, text))
					restored = strings.TrimPrefix(renamed, text)
				} else {
					ext := name[strings.LastIndex(name, "."):]
					base := strings.TrimSuffix(renamed, ext)
					require.True(t, strings.HasSuffix(base, text))
					restored = strings.TrimSuffix(base, text) + ext
				}
				assert.Equal(t, name, restored)
			}
		}
	}
}

func TestDescribeBehavior(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{
			name:     "replace in place",
			settings: Settings{SourceDir: "/shots", ResultDir: "/shots"},
			want:     "• Replacing originals with converted screenshots\n",
		},
		{
			name:     "copies without rename",
			settings: Settings{SourceDir: "/shots", ResultDir: "/out"},
			want:     "• Making copies of converted screenshots\n",
		},
		{
			name: "suffix on converted",
			settings: Settings{
				SourceDir: "/shots", ResultDir: "/shots",
				ShouldRename: true, RenameConverted: true, InsertText: "_fix",
			},
			want: "• Making copies of converted screenshots\n" +
				"• Adding suffix \"_fix\" to converted image\n" +
				"• Ex: \"converted.png\" -> \"converted_fix.png\"",
		},
		{
			name: "prefix on original",
			settings: Settings{
				SourceDir: "/shots", ResultDir: "/out",
				ShouldRename: true, InsertText: "old-", InsertAsPrefix: true,
			},
			want: "• Making copies of converted screenshots\n" +
				"• Adding prefix \"old-\" to original image\n" +
				"• Ex: \"original.png\" -> \"old-original.png\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.DescribeBehavior())
		})
	}
}

func TestParseScaler(t *testing.T) {
	s, err := ParseScaler("")
	require.NoError(t, err)
	assert.Equal(t, ScalerBilinear, s)

	s, err = ParseScaler(" Nearest ")
	require.NoError(t, err)
	assert.Equal(t, ScalerNearest, s)

	_, err = ParseScaler("lanczos")
	assert.Error(t, err)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("/work")
	assert.Equal(t, "/work", s.SourceDir)
	assert.Equal(t, "/work", s.ResultDir)
	assert.True(t, s.ShouldRename)
	assert.True(t, s.RenameConverted)
	assert.False(t, s.InsertAsPrefix)
	assert.Equal(t, "_fix", s.InsertText)
}

func TestTargets(t *testing.T) {
	s := Settings{SourceDir: "/src", ResultDir: "/out", InsertText: "_fix"}

	converted, renamed := s.Targets("a.png")
	assert.Equal(t, "/out/a.png", converted)
	assert.Empty(t, renamed)

	s.ShouldRename, s.RenameConverted = true, true
	converted, renamed = s.Targets("a.png")
	assert.Equal(t, "/out/a_fix.png", converted)
	assert.Empty(t, renamed)

	s.RenameConverted = false
	converted, renamed = s.Targets("a.png")
	assert.Equal(t, "/out/a.png", converted)
	assert.Equal(t, "/src/a_fix.png", renamed)
}
