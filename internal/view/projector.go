package view

import "github.com/rsinha/todotui/internal/model"

// Counters summarizes the unfiltered collection, regardless of the active
// filter.
type Counters struct {
	Total     int
	Remaining int
}

// Apply projects the snapshot through the filter mode. Insertion order is
// preserved and the input is never mutated. An unknown mode projects nothing.
func Apply(items []model.Task, mode model.FilterMode) []model.Task {
	out := make([]model.Task, 0, len(items))
	for _, t := range items {
		ok, err := t.Matches(mode)
		if err != nil {
			return nil
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}

// Count computes the summary counters from the unfiltered snapshot.
func Count(items []model.Task) Counters {
	c := Counters{Total: len(items)}
	for _, t := range items {
		if !t.Completed {
			c.Remaining++
		}
	}
	return c
}

// EmptyMessage is the single row shown when the projection is empty.
func EmptyMessage(mode model.FilterMode) string {
	switch mode {
	case model.FilterActive:
		return "All tasks completed!"
	case model.FilterCompleted:
		return "No completed tasks yet."
	default:
		return "No tasks yet. Add one above!"
	}
}
