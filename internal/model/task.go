package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidFilter = errors.New("model: invalid filter mode")

// FilterMode selects which subset of the task collection is displayed.
// It never affects what is stored.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

func (f FilterMode) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// Task is a user-entered unit of work. Text is immutable after creation;
// only Completed changes, via toggle.
type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id must be positive")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// Matches reports whether the task belongs to the subset named by mode.
func (t Task) Matches(mode FilterMode) (bool, error) {
	switch mode {
	case FilterAll:
		return true, nil
	case FilterActive:
		return !t.Completed, nil
	case FilterCompleted:
		return t.Completed, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidFilter, mode)
	}
}
