// Package task implements the task domain operations on top of the
// optimistic flat-file store: creation, ownership queries, the priority
// ordering used by every task listing, and the three in-place mutations
// (complete, reassign, reschedule).
package task

import (
	"context"
	"sort"
	"time"

	"github.com/shutteritch/TaskManager/internal/logging"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/store"
	"github.com/shutteritch/TaskManager/types"
)

// Service wires the task and user stores together. Every operation works
// from a fresh read of the backing files; the service itself holds no
// record state.
type Service struct {
	tasks store.TaskStore
	users store.UserStore
	log   logging.Logger
	now   func() time.Time
}

// NewService builds a Service reading and writing through the given stores.
func NewService(tasks store.TaskStore, users store.UserStore, log logging.Logger) *Service {
	return &Service{tasks: tasks, users: users, log: log, now: time.Now}
}

// WithClock overrides the time source used for assigned dates and the
// overdue predicate. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create validates the title and description against the delimiter rule,
// builds an incomplete task assigned today, and appends it.
func (s *Service) Create(owner, title, description string, due time.Time) (models.Task, error) {
	t := models.Task{
		Username:     owner,
		Title:        title,
		Description:  description,
		DueDate:      models.DateOnly(due),
		AssignedDate: models.DateOnly(s.now()),
		Completed:    false,
	}
	if err := models.ValidateStruct(t); err != nil {
		return models.Task{}, err
	}
	if err := s.tasks.Append(t); err != nil {
		return models.Task{}, err
	}
	s.log.Debug(context.Background(), "task created", "owner", owner, "title", title)
	return t, nil
}

// All returns every task in file order.
func (s *Service) All() ([]models.Task, error) {
	return s.tasks.List()
}

// ForOwner returns the tasks assigned to owner, preserving file order.
func (s *Service) ForOwner(owner string) ([]models.Task, error) {
	all, err := s.tasks.List()
	if err != nil {
		return nil, err
	}
	mine := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.Username == owner {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

// UserExists reports whether name matches a registered username.
func (s *Service) UserExists(name string) (bool, error) {
	users, err := s.users.List()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == name {
			return true, nil
		}
	}
	return false, nil
}

// MarkComplete flips the task to completed via compare-and-update, using
// the task's current encoded line as the staleness token. A ConflictError
// means another user changed the task first; the caller must reload and
// retry rather than overwrite.
func (s *Service) MarkComplete(t models.Task) (models.Task, error) {
	token := t.Line()
	t.Completed = true
	if err := s.tasks.CompareAndUpdate(token, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Reassign moves the task to newOwner, rejecting unknown usernames with a
// ValidationError before anything touches storage.
func (s *Service) Reassign(t models.Task, newOwner string) (models.Task, error) {
	known, err := s.UserExists(newOwner)
	if err != nil {
		return models.Task{}, err
	}
	if !known {
		return models.Task{}, &types.ValidationError{Field: "Username", Reason: "unknown user " + newOwner}
	}
	token := t.Line()
	t.Username = newOwner
	if err := s.tasks.CompareAndUpdate(token, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Reschedule changes the task's due date via the same optimistic cycle.
func (s *Service) Reschedule(t models.Task, due time.Time) (models.Task, error) {
	token := t.Line()
	t.DueDate = models.DateOnly(due)
	if err := s.tasks.CompareAndUpdate(token, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Overdue reports whether the task is incomplete with a due date strictly
// before now. Computed on demand, never persisted.
func (s *Service) Overdue(t models.Task) bool {
	return IsOverdue(t, s.now())
}

// IsOverdue is the overdue predicate against an explicit reference time.
func IsOverdue(t models.Task, now time.Time) bool {
	return !t.Completed && t.DueDate.Before(now)
}

// PrioritySort returns a copy of tasks ordered for display: incomplete
// tasks before completed ones, due date descending within each group, so
// the most urgent pending task sits at the bottom of a printed list.
//
// The ordering is produced by two sequential stable sorts; the second
// pass relies on the first pass's order surviving within each completion
// group.
func PrioritySort(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.After(sorted[j].DueDate)
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return !sorted[i].Completed && sorted[j].Completed
	})
	return sorted
}
