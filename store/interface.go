package store

import "github.com/shutteritch/TaskManager/models"

// TaskStore defines the persistence contract for task records.
//
// The backing file is the single source of truth: List re-reads it in
// full on every call, so any slice of tasks held by a caller is a
// snapshot that may already be stale. Mutations go through
// CompareAndUpdate, which detects staleness by value before committing.
type TaskStore interface {
	// List reads the entire file and decodes every line, returning tasks
	// in file order. A missing or empty file yields an empty slice. Any
	// malformed line aborts the whole read with a FormatError.
	List() ([]models.Task, error)

	// Append encodes the task and writes it as a new trailing line. It
	// never reads or validates existing content; uniqueness and input
	// validation belong to the caller.
	Append(t models.Task) error

	// CompareAndUpdate re-reads the current file and replaces every line
	// exactly equal to oldLine with the encoding of t. If no line
	// matched — the record was changed or removed by another writer since
	// oldLine was captured — it returns a ConflictError and writes
	// nothing. At most one of two concurrent updates to the same prior
	// value can win; the loser must reload and retry.
	CompareAndUpdate(oldLine string, t models.Task) error
}

// UserStore defines the persistence contract for user records. Users are
// append-only in practice (registration); CompareAndUpdate is part of the
// contract so credential changes can reuse the same optimistic cycle.
type UserStore interface {
	List() ([]models.User, error)
	Append(u models.User) error
	CompareAndUpdate(oldLine string, u models.User) error
}
