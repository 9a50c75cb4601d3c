package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shutteritch/TaskManager/types"
)

const (
	// FieldDelimiter separates fields within a stored record line. No string
	// field may ever contain it; ValidateStruct enforces this via the
	// "nodelim" rule before a record reaches the codec.
	FieldDelimiter = ", "

	// DateLayout is the fixed day-month-year format used in storage,
	// e.g. "24 Dec 2022".
	DateLayout = "02 Jan 2006"

	completedYes = "Yes"
	completedNo  = "No"

	taskFieldCount = 6
)

// Task represents a unit of work assigned to a user.
//
// A task has no surrogate key: its identity is the exact serialized field
// tuple produced by Line(), which doubles as the optimistic-concurrency
// token for updates.
type Task struct {
	Username     string    `validate:"required,nodelim"`
	Title        string    `validate:"required,nodelim"`
	Description  string    `validate:"nodelim"`
	DueDate      time.Time `validate:"required"`
	AssignedDate time.Time `validate:"required"`
	Completed    bool
}

// Line serializes the task into its stored single-line form:
// username, title, description, due date, assigned date, Yes/No.
func (t Task) Line() string {
	fields := []string{
		t.Username,
		t.Title,
		t.Description,
		t.DueDate.Format(DateLayout),
		t.AssignedDate.Format(DateLayout),
		completedNo,
	}
	if t.Completed {
		fields[5] = completedYes
	}
	return strings.Join(fields, FieldDelimiter)
}

// ParseTask decodes a stored line into a Task. It is the inverse of Line:
// ParseTask(t.Line()) == t for every valid task. A wrong field count, a
// malformed date, or an unknown completion token yields a FormatError.
func ParseTask(line string) (Task, error) {
	fields := strings.Split(line, FieldDelimiter)
	if len(fields) != taskFieldCount {
		return Task{}, &types.FormatError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", taskFieldCount, len(fields)),
		}
	}

	due, err := time.Parse(DateLayout, fields[3])
	if err != nil {
		return Task{}, &types.FormatError{Line: line, Reason: "bad due date: " + fields[3]}
	}
	assigned, err := time.Parse(DateLayout, fields[4])
	if err != nil {
		return Task{}, &types.FormatError{Line: line, Reason: "bad assigned date: " + fields[4]}
	}

	var completed bool
	switch fields[5] {
	case completedYes:
		completed = true
	case completedNo:
		completed = false
	default:
		return Task{}, &types.FormatError{Line: line, Reason: "bad completion flag: " + fields[5]}
	}

	return Task{
		Username:     fields[0],
		Title:        fields[1],
		Description:  fields[2],
		DueDate:      due,
		AssignedDate: assigned,
		Completed:    completed,
	}, nil
}

// CheckDelimiterFree rejects a value containing the field delimiter. It
// backs prompt-level validation, where input arrives one field at a time
// before a record struct exists.
func CheckDelimiterFree(field, value string) error {
	if strings.Contains(value, FieldDelimiter) {
		return &types.ValidationError{Field: field, Reason: fmt.Sprintf("must not contain %q", FieldDelimiter)}
	}
	return nil
}

// DateOnly truncates a time to midnight UTC, matching the precision of
// DateLayout so that stored dates survive a decode/encode round trip.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	// nodelim rejects any string containing the field delimiter, since a
	// delimiter inside a field would make the stored line ambiguous.
	_ = validate.RegisterValidation("nodelim", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), FieldDelimiter)
	})
}

// ValidateStruct runs tag validation on any record struct. Failures are
// reported as a ValidationError naming the first offending field, so the
// caller can re-prompt rather than abort.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	reason := fmt.Sprintf("failed rule %q", fe.Tag())
	if fe.Tag() == "nodelim" {
		reason = fmt.Sprintf("must not contain %q", FieldDelimiter)
	}
	return &types.ValidationError{Field: fe.Field(), Reason: reason}
}
