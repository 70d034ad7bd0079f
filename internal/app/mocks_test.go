package app

import (
	"errors"
	"image"
	"io"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"shotfix/internal/domain"
)

type mockFS struct {
	mu         sync.Mutex
	entries    []mockDirEntry
	dirs       map[string]bool
	modTimes   map[string]time.Time
	readDirErr error
	writeErr   error
	renameErr  error
	written    map[string][]byte
	renamed    map[string]string
	times      map[string]time.Time
}

func newMockFS(entries ...mockDirEntry) *mockFS {
	return &mockFS{
		entries:  entries,
		dirs:     map[string]bool{"/source": true, "/result": true},
		modTimes: map[string]time.Time{},
		written:  map[string][]byte{},
		renamed:  map[string]string{},
		times:    map[string]time.Time{},
	}
}

func (m *mockFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	if m.readDirErr != nil {
		return nil, m.readDirErr
	}
	out := make([]fs.DirEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	if t, ok := m.modTimes[path]; ok {
		return mockFileInfo{name: filepath.Base(path), modTime: t}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) IsDir(path string) bool {
	return m.dirs[path]
}

func (m *mockFS) Rename(oldPath, newPath string) error {
	if m.renameErr != nil {
		return m.renameErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renamed[oldPath] = newPath
	return nil
}

func (m *mockFS) WriteFile(path string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.written[path] = data
	return nil
}

func (m *mockFS) Chtimes(path string, mtime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.times[path] = mtime
	return nil
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func file(name string) mockDirEntry { return mockDirEntry{name: name} }
func dir(name string) mockDirEntry  { return mockDirEntry{name: name, isDir: true} }

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name    string
	modTime time.Time
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return m.modTime }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() interface{}   { return nil }

// mockCodec decodes from a map keyed by path and encodes the extension name.
type mockCodec struct {
	images    map[string]image.Image
	errs      map[string]error
	encodeErr   error
	configCalls *int
}

func (m mockCodec) Decode(path string) (image.Image, error) {
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	if img, ok := m.images[path]; ok {
		return img, nil
	}
	return nil, &domain.DecodeError{Kind: domain.Unreadable, Path: path, Err: fs.ErrNotExist}
}

// DecodeConfig counts its calls so tests can tell a header read from a full decode.
func (m mockCodec) DecodeConfig(path string) (image.Config, error) {
	if m.configCalls != nil {
		*m.configCalls++
	}
	img, err := m.Decode(path)
	if err != nil {
		return image.Config{}, err
	}
	b := img.Bounds()
	return image.Config{Width: b.Dx(), Height: b.Dy()}, nil
}

func (m mockCodec) Encode(w io.Writer, img image.Image, ext string) error {
	if m.encodeErr != nil {
		return m.encodeErr
	}
	_, err := io.WriteString(w, ext)
	return err
}

type mockExif struct {
	times map[string]time.Time
}

func (m mockExif) CaptureTime(path string) (time.Time, error) {
	if t, ok := m.times[path]; ok {
		return t, nil
	}
	return time.Time{}, errors.New("no exif")
}

// recordingSink keeps every report in order.
type recordingSink struct {
	mu            sync.Mutex
	progress      []int
	corrupt       []string
	unreadable    []string
	writeFailures int
	canceled      []int
	completed     []int
	busy          []bool
}

func (s *recordingSink) UpdateProgress(p int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, p)
}

func (s *recordingSink) ReportCorruptFile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corrupt = append(s.corrupt, name)
}

func (s *recordingSink) ReportUnreadableFile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unreadable = append(s.unreadable, name)
}

func (s *recordingSink) ReportWriteFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeFailures++
}

func (s *recordingSink) ReportCancel(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceled = append(s.canceled, n)
}

func (s *recordingSink) ReportComplete(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed = append(s.completed, n)
}

func (s *recordingSink) ToggleBusyState(b bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = append(s.busy, b)
}

// cancelAfter requests cancellation once k entries have reported progress.
type cancelAfter struct {
	recordingSink
	k int
}

func (c *cancelAfter) CancelRequested() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.progress)-1 >= c.k
}

type recordingSurface struct {
	empty   int
	tooLong int
	invalid []rune
}

func (s *recordingSurface) WarningEmptyText()         { s.empty++ }
func (s *recordingSurface) WarningExceededTextLimit() { s.tooLong++ }
func (s *recordingSurface) WarningInvalidText(c rune) { s.invalid = append(s.invalid, c) }

func wide() image.Image   { return image.NewRGBA(image.Rect(0, 0, 80, 60)) }
func square() image.Image { return image.NewRGBA(image.Rect(0, 0, 40, 40)) }
func tall() image.Image   { return image.NewRGBA(image.Rect(0, 0, 30, 50)) }
