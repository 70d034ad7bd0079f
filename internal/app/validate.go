package app

import (
	"errors"
	"fmt"

	"shotfix/internal/domain"
	appErrors "shotfix/internal/errors"
)

var errNotDirectory = errors.New("not an existing directory")

// HasValidDirectoryPaths checks that both directories exist. Directories are never created.
func HasValidDirectoryPaths(fsys FileSystem, settings domain.Settings) error {
	for _, dir := range []string{settings.SourceDir, settings.ResultDir} {
		if dir == "" || !fsys.IsDir(dir) {
			return appErrors.Wrap(appErrors.InvalidDirectory, "stat", dir, errNotDirectory)
		}
	}
	return nil
}

// ValidateSettings rejects settings an execution must not start with. Text
// problems are also forwarded to surface when one is given.
func ValidateSettings(fsys FileSystem, settings domain.Settings, surface ConfigSurface) error {
	if settings.ShouldRename {
		if err := domain.ValidateInsertText(settings.InsertText); err != nil {
			ReportTextError(surface, err)
			return appErrors.Wrap(appErrors.InvalidText, "validate", "", err)
		}
	}
	if _, err := domain.ParseScaler(string(settings.Scaler)); err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "validate", "", err)
	}
	if settings.JPEGQuality < 1 || settings.JPEGQuality > 100 {
		return appErrors.Wrap(appErrors.InvalidConfig, "validate", "",
			fmt.Errorf("jpeg quality must be between 1 and 100, got %d", settings.JPEGQuality))
	}
	return HasValidDirectoryPaths(fsys, settings)
}

// ReportTextError forwards a *domain.TextError to the matching surface warning.
func ReportTextError(surface ConfigSurface, err error) {
	if surface == nil {
		return
	}
	var textErr *domain.TextError
	if !errors.As(err, &textErr) {
		return
	}
	switch textErr.Problem {
	case domain.EmptyText:
		surface.WarningEmptyText()
	case domain.TextTooLong:
		surface.WarningExceededTextLimit()
	case domain.IllegalCharacter:
		surface.WarningInvalidText(textErr.Char)
	}
}
