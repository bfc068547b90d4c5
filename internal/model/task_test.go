package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        1,
		Text:      "buy milk",
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankText(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for _, text := range []string{"", "   ", "\t\n"} {
		task := Task{ID: 1, Text: text, CreatedAt: now}
		if err := task.Validate(); err == nil {
			t.Fatalf("expected error for text %q, got nil", text)
		}
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	task := Task{ID: 0, Text: "x", CreatedAt: now}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for zero id, got nil")
	}
	task = Task{ID: 1, Text: "x"}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for zero created_at, got nil")
	}
}

func TestFilterModeIsValid(t *testing.T) {
	for _, mode := range []FilterMode{FilterAll, FilterActive, FilterCompleted} {
		if !mode.IsValid() {
			t.Fatalf("expected %q valid", mode)
		}
	}
	if FilterMode("done").IsValid() {
		t.Fatal("expected unknown mode invalid")
	}
}

func TestTaskMatches(t *testing.T) {
	open := Task{ID: 1, Text: "a"}
	done := Task{ID: 2, Text: "b", Completed: true}

	cases := []struct {
		name string
		task Task
		mode FilterMode
		want bool
	}{
		{"all matches open", open, FilterAll, true},
		{"all matches done", done, FilterAll, true},
		{"active matches open", open, FilterActive, true},
		{"active rejects done", done, FilterActive, false},
		{"completed matches done", done, FilterCompleted, true},
		{"completed rejects open", open, FilterCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.task.Matches(tc.mode)
			if err != nil {
				t.Fatalf("matches: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTaskMatchesInvalidMode(t *testing.T) {
	_, err := Task{ID: 1, Text: "a"}.Matches(FilterMode("bogus"))
	if err == nil || !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got: %v", err)
	}
}
