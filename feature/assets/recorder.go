package assets

import (
	"context"
	"time"

	"asset-cache/core/batch"
	"asset-cache/core/render"
)

// Record describes one attempted load.
type Record struct {
	Batch    string
	Kind     Kind
	Name     string
	Path     string
	Err      error
	Width    int
	Height   int
	Duration time.Duration
}

// Recorder receives the records of each finished batch. Recording failures are
// logged by the manager and never fail the load.
type Recorder interface {
	Record(ctx context.Context, records []Record) error
}

func toRecords[T any](batchID string, kind Kind, results []batch.Result[T]) []Record {
	records := make([]Record, 0, len(results))
	for _, r := range results {
		rec := Record{
			Batch: batchID,
			Kind:  kind,
			Name:  r.Entry.Name,
			Path:  r.Entry.Path,
			Err:   r.Err,
		}
		if r.Err == nil {
			switch v := any(r.Value).(type) {
			case render.Image:
				rec.Width, rec.Height = v.Size()
			case render.Texture:
				rec.Width, rec.Height = v.Size()
			case render.Sound:
				rec.Duration = v.Duration()
			}
		}
		records = append(records, rec)
	}
	return records
}
