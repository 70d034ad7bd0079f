package app

import (
	"image"
	"io"
	"io/fs"
	"time"
)

type FileSystem interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	IsDir(path string) bool
	Rename(oldPath, newPath string) error
	WriteFile(path string, data []byte) error
	Chtimes(path string, mtime time.Time) error
}

// Codec decodes candidates and encodes results. Decode and DecodeConfig
// failures are *domain.DecodeError values.
type Codec interface {
	Decode(path string) (image.Image, error)
	DecodeConfig(path string) (image.Config, error)
	Encode(w io.Writer, img image.Image, ext string) error
}

type ExifReader interface {
	CaptureTime(path string) (time.Time, error)
}

// ProgressSink receives everything a user sees while a batch runs.
type ProgressSink interface {
	UpdateProgress(percent int)
	ReportCorruptFile(name string)
	ReportWriteFailure()
	ReportCancel(filesConverted int)
	ReportComplete(filesConverted int)
	ToggleBusyState(busy bool)
}

// UnreadableReporter is implemented by sinks that also show files which could
// not be read at all. Execute reports to it when the sink provides it.
type UnreadableReporter interface {
	ReportUnreadableFile(name string)
}

// ConfigSurface receives warnings about rejected rename text.
type ConfigSurface interface {
	WarningEmptyText()
	WarningExceededTextLimit()
	WarningInvalidText(char rune)
}

// CancelSource is polled once before each file.
type CancelSource interface {
	CancelRequested() bool
}

// NopSink ignores every report.
type NopSink struct{}

func (NopSink) UpdateProgress(int)       {}
func (NopSink) ReportCorruptFile(string) {}
func (NopSink) ReportWriteFailure()      {}
func (NopSink) ReportCancel(int)         {}
func (NopSink) ReportComplete(int)       {}
func (NopSink) ToggleBusyState(bool)     {}
