package report

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const rule = "-----------------------------------"

// RenderTaskOverview formats the task overview as the text artifact
// written to task_overview.txt.
func RenderTaskOverview(o TaskOverview) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("    TASK OVERVIEW\n")
	b.WriteString(rule + "\n")
	if o.Total == 0 {
		b.WriteString("    There are no tasks.\n")
		b.WriteString(rule)
		return b.String()
	}
	fmt.Fprintf(&b, "    Completed tasks:    %d\n", o.Completed)
	fmt.Fprintf(&b, "    Incomplete tasks:   %d\n", o.Incomplete)
	fmt.Fprintf(&b, "    Overdue tasks:      %d\n", o.Overdue)
	b.WriteString("    ---------------------------\n")
	fmt.Fprintf(&b, "    Total tasks:        %d\n", o.Total)
	b.WriteString("\n")
	b.WriteString("    BY PERCENTAGE:\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "    Incomplete tasks:   %.1f%%\n", o.PctIncomplete)
	fmt.Fprintf(&b, "    Overdue tasks:      %.1f%%\n", o.PctOverdue)
	b.WriteString(rule)
	return b.String()
}

// RenderUserOverview formats the per-user overview as the text artifact
// written to user_overview.txt. Users without tasks get a single summary
// line; their completion percentages are undefined and never shown.
func RenderUserOverview(o UserOverview) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("    INDIVIDUAL SUMMARIES\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "    Total Users:        %d\n", o.TotalUsers)
	fmt.Fprintf(&b, "    Total Tasks:        %d\n", o.TotalTasks)
	b.WriteString(rule)
	for _, u := range o.PerUser {
		if u.TotalUserTasks == 0 {
			fmt.Fprintf(&b, "\n    %s has 0 tasks.\n", u.Username)
			b.WriteString(rule)
			continue
		}
		fmt.Fprintf(&b, "\n>> %s\n", u.Username)
		fmt.Fprintf(&b, "    Total Tasks:        %d\n", u.TotalUserTasks)
		fmt.Fprintf(&b, "    Percentage of all:  %.1f%%\n", u.PctOfTotal)
		b.WriteString("    Completeness by percentage:\n")
		fmt.Fprintf(&b, "        Completed:      %.1f%%\n", u.PctCompleted)
		fmt.Fprintf(&b, "        Incomplete:     %.1f%%\n", u.PctPending)
		fmt.Fprintf(&b, "        Overdue:        %.1f%%\n", u.PctOverdue)
		b.WriteString(rule)
	}
	return b.String()
}

// Writer renders both overviews and writes them whole to their output
// files. Each generation fully replaces the previous artifact.
type Writer struct {
	gen              *Generator
	fs               afero.Fs
	taskOverviewPath string
	userOverviewPath string
}

// NewWriter builds a Writer emitting to the given paths.
func NewWriter(gen *Generator, fs afero.Fs, taskOverviewPath, userOverviewPath string) *Writer {
	return &Writer{gen: gen, fs: fs, taskOverviewPath: taskOverviewPath, userOverviewPath: userOverviewPath}
}

// Generate recomputes both overviews and rewrites both report files.
func (w *Writer) Generate() error {
	taskView, err := w.gen.TaskOverview()
	if err != nil {
		return fmt.Errorf("failed to compute task overview: %w", err)
	}
	userView, err := w.gen.UserOverview()
	if err != nil {
		return fmt.Errorf("failed to compute user overview: %w", err)
	}
	if err := afero.WriteFile(w.fs, w.taskOverviewPath, []byte(RenderTaskOverview(taskView)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.taskOverviewPath, err)
	}
	if err := afero.WriteFile(w.fs, w.userOverviewPath, []byte(RenderUserOverview(userView)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.userOverviewPath, err)
	}
	return nil
}

// Read returns the current contents of a generated report file.
func (w *Writer) Read(path string) (string, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read report %s: %w", path, err)
	}
	return string(data), nil
}

// TaskOverviewPath returns the task overview output path.
func (w *Writer) TaskOverviewPath() string { return w.taskOverviewPath }

// UserOverviewPath returns the per-user overview output path.
func (w *Writer) UserOverviewPath() string { return w.userOverviewPath }
