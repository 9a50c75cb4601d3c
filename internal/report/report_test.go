package report

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutteritch/TaskManager/internal/logging"
	"github.com/shutteritch/TaskManager/internal/task"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/store"
)

var testNow = time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	fs      afero.Fs
	tasks   *store.FileTaskStore
	users   *store.FileUserStore
	service *task.Service
	gen     *Generator
}

func newFixture(t *testing.T, usernames ...string) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	log := logging.NopLogger{}
	tasks := store.NewFileTaskStore(fs, "tasks.txt", log)
	users := store.NewFileUserStore(fs, "user.txt", log)
	for _, name := range usernames {
		require.NoError(t, users.Append(models.User{Username: name, Password: "pw"}))
	}
	clock := func() time.Time { return testNow }
	return &fixture{
		fs:      fs,
		tasks:   tasks,
		users:   users,
		service: task.NewService(tasks, users, log).WithClock(clock),
		gen:     NewGenerator(tasks, users).WithClock(clock),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaskOverviewEmpty(t *testing.T) {
	f := newFixture(t, "admin")

	o, err := f.gen.TaskOverview()
	require.NoError(t, err)
	assert.Zero(t, o.Total)
	assert.Zero(t, o.PctIncomplete)
	assert.Zero(t, o.PctOverdue)
	assert.Contains(t, RenderTaskOverview(o), "There are no tasks.")
}

func TestTaskOverviewCounts(t *testing.T) {
	f := newFixture(t, "alice", "bob")

	// Two pending (one overdue), one completed.
	_, err := f.service.Create("alice", "late", "d", date(2023, time.January, 1))
	require.NoError(t, err)
	_, err = f.service.Create("alice", "future", "d", date(2030, time.January, 1))
	require.NoError(t, err)
	done, err := f.service.Create("bob", "done", "d", date(2030, time.February, 1))
	require.NoError(t, err)
	_, err = f.service.MarkComplete(done)
	require.NoError(t, err)

	o, err := f.gen.TaskOverview()
	require.NoError(t, err)
	assert.Equal(t, 3, o.Total)
	assert.Equal(t, 1, o.Completed)
	assert.Equal(t, 2, o.Incomplete)
	assert.Equal(t, 1, o.Overdue)
	assert.InDelta(t, 66.666, o.PctIncomplete, 0.01)
	assert.InDelta(t, 33.333, o.PctOverdue, 0.01)
}

func TestUserOverviewAsymmetry(t *testing.T) {
	f := newFixture(t, "alice", "idle")

	_, err := f.service.Create("alice", "t1", "d", date(2023, time.January, 1))
	require.NoError(t, err)
	done, err := f.service.Create("alice", "t2", "d", date(2030, time.January, 1))
	require.NoError(t, err)
	_, err = f.service.MarkComplete(done)
	require.NoError(t, err)

	o, err := f.gen.UserOverview()
	require.NoError(t, err)
	assert.Equal(t, 2, o.TotalUsers)
	assert.Equal(t, 2, o.TotalTasks)
	require.Len(t, o.PerUser, 2)

	alice := o.PerUser[0]
	assert.Equal(t, 2, alice.TotalUserTasks)
	assert.InDelta(t, 100.0, alice.PctOfTotal, 0.01)
	assert.InDelta(t, 50.0, alice.PctCompleted, 0.01)
	assert.InDelta(t, 50.0, alice.PctPending, 0.01)
	assert.InDelta(t, 50.0, alice.PctOverdue, 0.01)

	// A user with no tasks still gets a share-of-total figure; the
	// completion percentages stay undefined at zero.
	idle := o.PerUser[1]
	assert.Zero(t, idle.TotalUserTasks)
	assert.Zero(t, idle.PctOfTotal)
	assert.Zero(t, idle.PctCompleted)
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.users.Append(models.User{Username: "alice", Password: "pw1"}))

	created, err := f.service.Create("alice", "T1", "the only task", date(2030, time.January, 1))
	require.NoError(t, err)

	mine, err := f.service.ForOwner("alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].Completed)

	_, err = f.service.MarkComplete(created)
	require.NoError(t, err)

	o, err := f.gen.TaskOverview()
	require.NoError(t, err)
	assert.Equal(t, 1, o.Completed)
	assert.Equal(t, 0, o.Incomplete)
}

func TestWriterGenerateReplacesWholeFiles(t *testing.T) {
	f := newFixture(t, "alice")
	w := NewWriter(f.gen, f.fs, "task_overview.txt", "user_overview.txt")

	require.NoError(t, w.Generate())
	first, err := w.Read("task_overview.txt")
	require.NoError(t, err)
	assert.Contains(t, first, "There are no tasks.")

	_, err = f.service.Create("alice", "t1", "d", date(2030, time.January, 1))
	require.NoError(t, err)

	// Regeneration fully replaces the previous artifact.
	require.NoError(t, w.Generate())
	second, err := w.Read("task_overview.txt")
	require.NoError(t, err)
	assert.NotContains(t, second, "There are no tasks.")
	assert.Contains(t, second, "Total tasks:        1")
}
