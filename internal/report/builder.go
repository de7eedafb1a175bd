package report

import (
	"context"

	"github.com/kapilank-k/product-comparator/internal/match"
	"github.com/kapilank-k/product-comparator/internal/model"
)

// Build assembles annotated comparison rows in aspect order. Absent
// fields render as the "Not mentioned" sentinel, and rows where both
// sides are absent are dropped entirely: fields irrelevant to the pair
// never clutter the table.
func Build(order []model.Field, left, right model.Record) []model.Row {
	rows := make([]model.Row, 0, len(order))
	for _, aspect := range order {
		v1 := left.Get(aspect)
		v2 := right.Get(aspect)
		if v1 == model.NotMentioned && v2 == model.NotMentioned {
			continue
		}
		rows = append(rows, model.Row{Aspect: aspect, Left: v1, Right: v2})
	}
	return rows
}

// BuildGraded assembles rows with a match status per aspect. Unlike the
// annotated path, every selected field produces a row: the status column
// already says "Not Mentioned", and the fallback orchestrator needs to
// see missing fields to decide whether to fire.
func BuildGraded(ctx context.Context, order []model.Field, left, right model.Record, cmp *match.Comparator) []model.Row {
	rows := make([]model.Row, 0, len(order))
	for _, aspect := range order {
		v1, ok1 := left[aspect]
		v2, ok2 := right[aspect]
		status := cmp.Compare(ctx, v1, v2, ok1, ok2)
		rows = append(rows, model.Row{
			Aspect: aspect,
			Left:   left.Get(aspect),
			Right:  right.Get(aspect),
			Status: status,
		})
	}
	return rows
}
