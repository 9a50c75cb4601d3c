// Package report derives aggregate task statistics by scanning the full
// record set. Nothing here is persisted incrementally: every overview is
// recomputed from scratch, and the report files are rewritten whole.
package report

import (
	"time"

	"github.com/shutteritch/TaskManager/internal/task"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/store"
)

// TaskOverview holds the system-wide task statistics. When Total is zero
// the percentage fields are undefined and renderers must state "no tasks"
// instead of showing them.
type TaskOverview struct {
	Total         int
	Completed     int
	Incomplete    int
	Overdue       int
	PctIncomplete float64
	PctOverdue    float64
}

// UserStats holds one user's row of the per-user report. PctOfTotal is
// computed against the global task total even when the user has no tasks;
// the completion percentages are only defined when TotalUserTasks > 0.
type UserStats struct {
	Username       string
	TotalUserTasks int
	PctOfTotal     float64
	PctCompleted   float64
	PctPending     float64
	PctOverdue     float64
}

// UserOverview holds the per-user report.
type UserOverview struct {
	TotalUsers int
	TotalTasks int
	PerUser    []UserStats
}

// Generator computes overviews from fresh reads of the stores.
type Generator struct {
	tasks store.TaskStore
	users store.UserStore
	now   func() time.Time
}

// NewGenerator builds a Generator reading through the given stores.
func NewGenerator(tasks store.TaskStore, users store.UserStore) *Generator {
	return &Generator{tasks: tasks, users: users, now: time.Now}
}

// WithClock overrides the reference time for the overdue counts.
// Intended for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// TaskOverview scans all tasks once and aggregates the counts.
func (g *Generator) TaskOverview() (TaskOverview, error) {
	all, err := g.tasks.List()
	if err != nil {
		return TaskOverview{}, err
	}
	now := g.now()

	o := TaskOverview{Total: len(all)}
	for _, t := range all {
		if t.Completed {
			o.Completed++
		} else {
			o.Incomplete++
		}
		if task.IsOverdue(t, now) {
			o.Overdue++
		}
	}
	if o.Total > 0 {
		o.PctIncomplete = pct(o.Incomplete, o.Total)
		o.PctOverdue = pct(o.Overdue, o.Total)
	}
	return o, nil
}

// UserOverview scans all users and tasks and builds one row per user, in
// user-file order.
func (g *Generator) UserOverview() (UserOverview, error) {
	users, err := g.users.List()
	if err != nil {
		return UserOverview{}, err
	}
	all, err := g.tasks.List()
	if err != nil {
		return UserOverview{}, err
	}
	now := g.now()

	o := UserOverview{TotalUsers: len(users), TotalTasks: len(all)}
	for _, u := range users {
		o.PerUser = append(o.PerUser, userStats(u, all, now))
	}
	return o, nil
}

func userStats(u models.User, all []models.Task, now time.Time) UserStats {
	s := UserStats{Username: u.Username}
	var completed, pending, overdue int
	for _, t := range all {
		if t.Username != u.Username {
			continue
		}
		s.TotalUserTasks++
		if t.Completed {
			completed++
		} else {
			pending++
		}
		if task.IsOverdue(t, now) {
			overdue++
		}
	}
	if len(all) > 0 {
		s.PctOfTotal = pct(s.TotalUserTasks, len(all))
	}
	if s.TotalUserTasks > 0 {
		s.PctCompleted = pct(completed, s.TotalUserTasks)
		s.PctPending = pct(pending, s.TotalUserTasks)
		s.PctOverdue = pct(overdue, s.TotalUserTasks)
	}
	return s
}

func pct(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}
