package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"time"

	"shotfix/internal/domain"
	appErrors "shotfix/internal/errors"
	"shotfix/internal/imaging"
	"shotfix/internal/logging"
)

// BatchResizer squishes every wide image in a source directory into a square copy.
//
// A BatchResizer runs one batch at a time. Calling Execute or Start again
// before the previous run finished is not supported.
type BatchResizer struct {
	FS     FileSystem
	Codec  Codec
	Exif   ExifReader
	Logger logging.Logger
}

// runState is the per-execution state. It is discarded when Execute returns.
type runState struct {
	ctx         context.Context
	cancel      CancelSource
	writeFailed bool
	summary     domain.Summary
}

func (s *runState) cancelRequested() bool {
	if s.writeFailed || s.ctx.Err() != nil {
		return true
	}
	return s.cancel != nil && s.cancel.CancelRequested()
}

// Execute converts the top-level images of settings.SourceDir. Both directories
// must already exist; see HasValidDirectoryPaths. Per-file decode problems are
// reported and skipped. A write failure is reported and stops the batch after
// the current file. The returned error is only set when the batch could not
// start at all.
func (r *BatchResizer) Execute(ctx context.Context, settings domain.Settings, sink ProgressSink, cancel CancelSource) (domain.Summary, error) {
	if r.FS == nil || r.Codec == nil {
		return domain.Summary{}, errors.New("resizer requires FS and Codec")
	}
	if sink == nil {
		sink = NopSink{}
	}

	stop := r.Logger.Measure("Converting " + settings.SourceDir)
	defer stop()

	state := &runState{ctx: ctx, cancel: cancel}

	sink.ToggleBusyState(true)
	defer sink.ToggleBusyState(false)
	sink.UpdateProgress(0)

	entries, err := r.FS.ReadDir(settings.SourceDir)
	if err != nil {
		return state.summary, appErrors.Wrap(appErrors.IOFailure, "list", settings.SourceDir, err)
	}
	total := len(entries)
	state.summary.TotalFiles = total
	r.Logger.Verbosef("Found %d entries in %s", total, settings.SourceDir)

	for i, entry := range entries {
		if state.cancelRequested() {
			break
		}
		if !entry.IsDir() && domain.IsImageExtension(entry.Name()) {
			r.convert(state, settings, sink, domain.NewImageFile(filepath.Join(settings.SourceDir, entry.Name())))
		}
		sink.UpdateProgress(percent(i+1, total))
	}

	state.summary.WriteFailed = state.writeFailed
	state.summary.WasCanceled = state.cancelRequested()
	if state.summary.WasCanceled {
		r.Logger.Infof("Canceled after converting %d files", state.summary.FilesConverted)
		sink.ReportCancel(state.summary.FilesConverted)
	} else {
		r.Logger.Infof("Converted %d of %d entries", state.summary.FilesConverted, total)
		sink.ReportComplete(state.summary.FilesConverted)
	}
	return state.summary, nil
}

func (r *BatchResizer) convert(state *runState, settings domain.Settings, sink ProgressSink, file domain.ImageFile) {
	r.Logger.Verbosef("Processing %s", file.Name)

	img, err := r.Codec.Decode(file.Path)
	if err != nil {
		if domain.DecodeKind(err) == domain.Corrupt {
			r.Logger.Warnf("%s is possibly corrupt: %v", file.Name, err)
			state.summary.Corrupt = append(state.summary.Corrupt, file.Name)
			sink.ReportCorruptFile(file.Name)
			return
		}
		r.Logger.Errorf(err, "Could not read %s", file.Path)
		state.summary.Unreadable = append(state.summary.Unreadable, file.Name)
		if reporter, ok := sink.(UnreadableReporter); ok {
			reporter.ReportUnreadableFile(file.Name)
		}
		return
	}

	bounds := img.Bounds()
	if ok, reason := domain.ShouldResize(bounds.Dx(), bounds.Dy()); !ok {
		r.Logger.Verbosef("Skipping %s (%dx%d): %s", file.Name, bounds.Dx(), bounds.Dy(), reason)
		state.summary.Skipped++
		return
	}

	var takenAt time.Time
	if settings.PreserveTime {
		takenAt = r.captureTime(file.Path)
	}

	var buf bytes.Buffer
	if err := r.Codec.Encode(&buf, imaging.Squish(img, settings.Scaler), file.Ext); err != nil {
		r.writeFailure(state, sink, file.Name, err)
		return
	}

	target, renamedOriginal := settings.Targets(file.Name)
	if renamedOriginal != "" {
		if err := r.FS.Rename(file.Path, renamedOriginal); err != nil {
			r.writeFailure(state, sink, file.Name, err)
			return
		}
	}
	if err := r.FS.WriteFile(target, buf.Bytes()); err != nil {
		r.writeFailure(state, sink, file.Name, err)
		return
	}
	state.summary.FilesConverted++
	r.Logger.Verbosef("Converted %s -> %s (%dx%d)", file.Name, target, bounds.Dy(), bounds.Dy())

	if !takenAt.IsZero() {
		if err := r.FS.Chtimes(target, takenAt); err != nil {
			r.Logger.Verbosef("Could not set time on %s: %v", target, err)
		}
	}
}

func (r *BatchResizer) writeFailure(state *runState, sink ProgressSink, name string, err error) {
	r.Logger.Errorf(err, "Error writing %s to result folder", name)
	state.writeFailed = true
	sink.ReportWriteFailure()
}

// captureTime prefers the EXIF capture time and falls back to the file's mtime.
func (r *BatchResizer) captureTime(path string) time.Time {
	if r.Exif != nil {
		if t, err := r.Exif.CaptureTime(path); err == nil {
			return t
		}
	}
	info, err := r.FS.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// percent rounds handled/total to the nearest whole percent.
func percent(handled, total int) int {
	if total <= 0 {
		return 0
	}
	return (100*handled + total/2) / total
}
