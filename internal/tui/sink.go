package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Messages for the TUI
type (
	ProgressMsg struct {
		Percent int
	}
	CorruptFileMsg struct {
		Name string
	}
	UnreadableFileMsg struct {
		Name string
	}
	WriteFailureMsg struct{}
	CanceledMsg     struct {
		FilesConverted int
	}
	CompleteMsg struct {
		FilesConverted int
	}
	BusyMsg struct {
		Busy bool
	}
	ErrorMsg struct {
		Err error
	}
)

// Sink turns progress reports into messages for the Model. The channel closes
// when the batch leaves its busy state, which is always its last report.
type Sink struct {
	events chan tea.Msg
}

func NewSink() *Sink {
	return &Sink{events: make(chan tea.Msg, 64)}
}

func (s *Sink) Events() <-chan tea.Msg {
	return s.events
}

// Drain discards whatever is still queued, so a batch can finish after the UI quit.
func (s *Sink) Drain() {
	for range s.events {
	}
}

func (s *Sink) UpdateProgress(percent int)    { s.events <- ProgressMsg{Percent: percent} }
func (s *Sink) ReportCorruptFile(name string) { s.events <- CorruptFileMsg{Name: name} }
func (s *Sink) ReportWriteFailure()           { s.events <- WriteFailureMsg{} }

func (s *Sink) ReportUnreadableFile(name string) {
	s.events <- UnreadableFileMsg{Name: name}
}

func (s *Sink) ReportCancel(filesConverted int) {
	s.events <- CanceledMsg{FilesConverted: filesConverted}
}

func (s *Sink) ReportComplete(filesConverted int) {
	s.events <- CompleteMsg{FilesConverted: filesConverted}
}

func (s *Sink) ToggleBusyState(busy bool) {
	s.events <- BusyMsg{Busy: busy}
	if !busy {
		close(s.events)
	}
}

// waitForEvent reads the next report; a closed channel ends the subscription.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}
