package store

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutteritch/TaskManager/internal/logging"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/types"
)

func testTask(owner, title string, due time.Time, completed bool) models.Task {
	return models.Task{
		Username:     owner,
		Title:        title,
		Description:  "desc of " + title,
		DueDate:      due,
		AssignedDate: time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC),
		Completed:    completed,
	}
}

func newTaskStore(t *testing.T) (*FileTaskStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewFileTaskStore(fs, "tasks.txt", logging.NopLogger{}), fs
}

func fileContents(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestListMissingAndEmptyFile(t *testing.T) {
	s, fs := newTaskStore(t)

	// Missing file reads as empty.
	tasks, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Empty file reads as empty, not as one malformed record.
	require.NoError(t, afero.WriteFile(fs, "tasks.txt", []byte(""), 0o644))
	tasks, err = s.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// A trailing blank line is framing, not a record.
	require.NoError(t, afero.WriteFile(fs, "tasks.txt",
		[]byte("alice, t, d, 24 Dec 2022, 01 Dec 2022, No\n"), 0o644))
	tasks, err = s.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "alice", tasks[0].Username)
}

func TestListMalformedLineFailsWholeRead(t *testing.T) {
	s, fs := newTaskStore(t)
	require.NoError(t, afero.WriteFile(fs, "tasks.txt", []byte(
		"alice, t, d, 24 Dec 2022, 01 Dec 2022, No\n"+
			"this line is garbage\n"+
			"bob, t2, d2, 25 Dec 2022, 01 Dec 2022, Yes"), 0o644))

	_, err := s.List()
	require.Error(t, err)
	var ferr *types.FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestAppendFraming(t *testing.T) {
	s, fs := newTaskStore(t)
	due := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	first := testTask("alice", "first", due, false)
	second := testTask("bob", "second", due, false)

	require.NoError(t, s.Append(first))
	assert.Equal(t, first.Line(), fileContents(t, fs, "tasks.txt"))

	require.NoError(t, s.Append(second))
	assert.Equal(t, first.Line()+"\n"+second.Line(), fileContents(t, fs, "tasks.txt"))

	tasks, err := s.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, []models.Task{first, second}, tasks)
}

func TestCompareAndUpdate(t *testing.T) {
	s, _ := newTaskStore(t)
	due := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	orig := testTask("alice", "report", due, false)
	other := testTask("bob", "unrelated", due, false)
	require.NoError(t, s.Append(orig))
	require.NoError(t, s.Append(other))

	updated := orig
	updated.Completed = true
	require.NoError(t, s.CompareAndUpdate(orig.Line(), updated))

	tasks, err := s.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Completed)
	// The unrelated record is untouched.
	assert.Equal(t, other, tasks[1])
}

func TestCompareAndUpdateConflictLeavesFileUnchanged(t *testing.T) {
	s, fs := newTaskStore(t)
	due := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	orig := testTask("alice", "report", due, false)
	require.NoError(t, s.Append(orig))

	// First writer wins: the task is reassigned under us.
	winner := orig
	winner.Username = "bob"
	require.NoError(t, s.CompareAndUpdate(orig.Line(), winner))
	before := fileContents(t, fs, "tasks.txt")

	// Second writer still holds the original snapshot; its token no
	// longer matches any line.
	stale := orig
	stale.Completed = true
	err := s.CompareAndUpdate(orig.Line(), stale)
	require.Error(t, err)
	var cerr *types.ConflictError
	assert.ErrorAs(t, err, &cerr)

	// Byte-for-byte untouched.
	assert.Equal(t, before, fileContents(t, fs, "tasks.txt"))
}

func TestUserStoreBootstrap(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileUserStore(fs, "user.txt", logging.NopLogger{})
	admin := models.User{Username: "admin", Password: "adm1n"}

	require.NoError(t, s.Bootstrap(admin))
	assert.Equal(t, "admin, adm1n", fileContents(t, fs, "user.txt"))

	// A second bootstrap leaves an existing file alone.
	require.NoError(t, s.Append(models.User{Username: "alice", Password: "pw1"}))
	require.NoError(t, s.Bootstrap(admin))

	users, err := s.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[1].Username)
}

func TestUserStoreCompareAndUpdate(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileUserStore(fs, "user.txt", logging.NopLogger{})
	u := models.User{Username: "alice", Password: "pw1"}
	require.NoError(t, s.Append(u))

	changed := models.User{Username: "alice", Password: "pw2"}
	require.NoError(t, s.CompareAndUpdate(u.Line(), changed))

	err := s.CompareAndUpdate(u.Line(), models.User{Username: "alice", Password: "pw3"})
	var cerr *types.ConflictError
	assert.ErrorAs(t, err, &cerr)

	users, err := s.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "pw2", users[0].Password)
}
