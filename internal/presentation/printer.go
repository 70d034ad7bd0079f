package presentation

import (
	"fmt"
	"io"
	"strings"

	"shotfix/internal/domain"
)

// Printer is the plain-text progress sink and configuration surface.
type Printer struct {
	Writer       io.Writer
	Verbose      bool
	lastProgress int
}

func (p *Printer) UpdateProgress(percent int) {
	if !p.Verbose || percent == p.lastProgress {
		return
	}
	p.lastProgress = percent
	fmt.Fprintf(p.Writer, "Progress: %3d%%\n", percent)
}

// PlanProgress reports how many entries a dry run has read so far.
func (p *Printer) PlanProgress(current, total int) {
	if total <= 0 {
		return
	}
	p.UpdateProgress((100*current + total/2) / total)
}

func (p *Printer) ReportCorruptFile(name string) {
	fmt.Fprintf(p.Writer, "Warning: %s could not be read as an image and is possibly corrupt. Skipped.\n", name)
}

func (p *Printer) ReportUnreadableFile(name string) {
	fmt.Fprintf(p.Writer, "Warning: %s could not be read. Skipped.\n", name)
}

func (p *Printer) ReportWriteFailure() {
	fmt.Fprintln(p.Writer, "Error writing to the result folder. Stopping.")
}

func (p *Printer) ReportCancel(filesConverted int) {
	fmt.Fprintf(p.Writer, "Canceled. %s before stopping.\n", convertedPhrase(filesConverted))
}

func (p *Printer) ReportComplete(filesConverted int) {
	fmt.Fprintf(p.Writer, "Done. %s.\n", convertedPhrase(filesConverted))
}

func (p *Printer) ToggleBusyState(busy bool) {
	if busy {
		p.lastProgress = -1
		fmt.Fprintln(p.Writer, "Converting screenshots...")
	}
}

func (p *Printer) WarningEmptyText() {
	fmt.Fprintln(p.Writer, "Warning: the text to insert cannot be empty.")
}

func (p *Printer) WarningExceededTextLimit() {
	fmt.Fprintf(p.Writer, "Warning: the text to insert cannot be longer than %d characters.\n", domain.MaxInsertTextLength)
}

func (p *Printer) WarningInvalidText(char rune) {
	fmt.Fprintf(p.Writer, "Warning: %q is not allowed. Use letters, digits, '_' or '-'.\n", char)
}

func (p *Printer) PrintBehavior(settings domain.Settings) {
	fmt.Fprintf(p.Writer, "Source: %s\n", settings.SourceDir)
	fmt.Fprintf(p.Writer, "Result: %s\n", settings.ResultDir)
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, strings.TrimRight(settings.DescribeBehavior(), "\n"))
}

func (p *Printer) PrintDryRun(plan domain.Plan) {
	fmt.Fprintln(p.Writer, "Converting:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatPlanLines(plan.Items, p.Verbose) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Would convert %d images, skip %d already square or tall images.\n", plan.ConvertCount, plan.SkipCount)
	if plan.ErrorCount > 0 {
		fmt.Fprintf(p.Writer, "%d images could not be read.\n", plan.ErrorCount)
	}
	if p.Verbose {
		fmt.Fprintf(p.Writer, "%d entries are not images and were ignored.\n", plan.IgnoredCount)
	}
}

func (p *Printer) PrintSummary(summary domain.Summary) {
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Converted %d, skipped %d of %d entries.\n", summary.FilesConverted, summary.Skipped, summary.TotalFiles)
	if len(summary.Corrupt) > 0 {
		fmt.Fprintf(p.Writer, "Possibly corrupt: %s\n", strings.Join(summary.Corrupt, ", "))
	}
	if len(summary.Unreadable) > 0 {
		fmt.Fprintf(p.Writer, "Unreadable: %s\n", strings.Join(summary.Unreadable, ", "))
	}
}

func convertedPhrase(n int) string {
	if n == 1 {
		return "Converted 1 file"
	}
	return fmt.Sprintf("Converted %d files", n)
}

// formatPlanLines keeps the first and last two lines of a long plan unless all is set.
func formatPlanLines(items []domain.PlanItem, all bool) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, formatPlanItem(item))
	}

	if all || len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

func formatPlanItem(item domain.PlanItem) string {
	switch item.Action {
	case domain.ActionConvert:
		line := fmt.Sprintf("Convert %s  %dx%d -> %dx%d  %s", item.File.Name, item.Width, item.Height, item.Height, item.Height, item.TargetPath)
		if item.RenamePath != "" {
			line += fmt.Sprintf("  (original -> %s)", item.RenamePath)
		}
		return line
	case domain.ActionSkip:
		return fmt.Sprintf("Skip %s  %dx%d (%s)", item.File.Name, item.Width, item.Height, item.Reason)
	default:
		return fmt.Sprintf("Skip %s  (%s)", item.File.Name, item.Action)
	}
}
