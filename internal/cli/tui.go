package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"shotfix/internal/app"
	"shotfix/internal/domain"
	"shotfix/internal/tui"
)

// runTUI converts on a background goroutine while the terminal UI shows progress.
func runTUI(ctx context.Context, resizer *app.BatchResizer, settings domain.Settings) (domain.Summary, error) {
	sink := tui.NewSink()
	run := resizer.Start(ctx, settings, sink)

	program := tea.NewProgram(tui.NewModel(tui.Config{
		Settings: settings,
		Events:   sink.Events(),
		Cancel:   run.Cancel,
	}))

	go func() {
		if _, err := run.Wait(); err != nil {
			program.Send(tui.ErrorMsg{Err: err})
		}
	}()

	_, uiErr := program.Run()
	if run.Executing() {
		run.Cancel()
	}
	go sink.Drain()

	summary, err := run.Wait()
	if uiErr != nil {
		return summary, uiErr
	}
	return summary, err
}
