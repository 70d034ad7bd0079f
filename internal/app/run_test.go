package app

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateSink blocks after the first file until the test releases it.
type gateSink struct {
	recordingSink
	reached chan struct{}
	release chan struct{}
}

func (g *gateSink) UpdateProgress(p int) {
	g.recordingSink.UpdateProgress(p)
	if p > 0 && g.reached != nil {
		close(g.reached)
		g.reached = nil
		<-g.release
	}
}

func TestRunCancelFinishesCurrentFile(t *testing.T) {
	mock := newMockFS(file("a.png"), file("b.png"), file("c.png"))
	codec := mockCodec{images: map[string]image.Image{
		"/source/a.png": wide(), "/source/b.png": wide(), "/source/c.png": wide(),
	}}
	resizer := BatchResizer{FS: mock, Codec: codec}
	sink := &gateSink{reached: make(chan struct{}), release: make(chan struct{})}
	reached := sink.reached

	run := resizer.Start(context.Background(), baseSettings(), sink)
	assert.True(t, run.Executing())

	select {
	case <-reached:
	case <-time.After(5 * time.Second):
		t.Fatal("first file never finished")
	}
	run.Cancel()
	assert.True(t, run.CancelRequested())
	close(sink.release)

	summary, err := run.Wait()
	require.NoError(t, err)
	assert.True(t, summary.WasCanceled)
	assert.Equal(t, 1, summary.FilesConverted)
	assert.False(t, run.Executing())
	assert.Equal(t, []int{1}, sink.canceled)

	select {
	case <-run.Done():
	default:
		t.Fatal("Done should be closed after Wait")
	}
}

func TestRunCompletes(t *testing.T) {
	mock := newMockFS(file("a.png"))
	resizer := BatchResizer{FS: mock, Codec: mockCodec{images: map[string]image.Image{"/source/a.png": wide()}}}

	run := resizer.Start(context.Background(), baseSettings(), nil)
	summary, err := run.Wait()
	require.NoError(t, err)
	assert.False(t, summary.WasCanceled)
	assert.Equal(t, 1, summary.FilesConverted)
	assert.False(t, run.CancelRequested())
}
