package report

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestRenderTaskOverviewGolden(t *testing.T) {
	o := TaskOverview{
		Total:         4,
		Completed:     1,
		Incomplete:    3,
		Overdue:       2,
		PctIncomplete: 75,
		PctOverdue:    50,
	}
	g := goldie.New(t)
	g.Assert(t, "task_overview", []byte(RenderTaskOverview(o)))
}

func TestRenderTaskOverviewEmptyGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "task_overview_empty", []byte(RenderTaskOverview(TaskOverview{})))
}

func TestRenderUserOverviewGolden(t *testing.T) {
	o := UserOverview{
		TotalUsers: 2,
		TotalTasks: 4,
		PerUser: []UserStats{
			{Username: "admin"},
			{
				Username:       "alice",
				TotalUserTasks: 4,
				PctOfTotal:     100,
				PctCompleted:   25,
				PctPending:     75,
				PctOverdue:     50,
			},
		},
	}
	g := goldie.New(t)
	g.Assert(t, "user_overview", []byte(RenderUserOverview(o)))
}
