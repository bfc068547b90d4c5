package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rsinha/todotui/internal/model"
)

const timeLayout = time.RFC3339Nano

type taskRecord struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// EncodeTasks serializes the whole collection as the JSON array persisted
// under the task storage key.
func EncodeTasks(items []model.Task) (string, error) {
	records := make([]taskRecord, 0, len(items))
	for _, t := range items {
		records = append(records, taskRecord{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.UTC().Format(timeLayout),
		})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(payload), nil
}

// DecodeTasks parses a persisted payload back into an ordered collection.
func DecodeTasks(payload string) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		createdAt, err := time.Parse(timeLayout, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("decode tasks: parse created_at %q: %w", rec.CreatedAt, err)
		}
		out = append(out, model.Task{
			ID:        rec.ID,
			Text:      rec.Text,
			Completed: rec.Completed,
			CreatedAt: createdAt,
		})
	}
	return out, nil
}
