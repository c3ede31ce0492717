package domain

import "time"

// Buckets is the categorized dashboard view of one owner's tasks. The
// buckets are disjoint and together cover every task exactly once.
// Incomplete tasks without a due date get their own bucket instead of
// being silently dropped.
type Buckets struct {
	Overdue   []Task
	DueToday  []Task
	DueLater  []Task
	NoDueDate []Task
	Completed []Task
}

// Categorize partitions tasks against an explicit reference date. The
// caller derives "today" once per invocation; nothing here reads the
// clock, so the same input always yields the same output. Due dates are
// compared at day granularity only, and relative order within each bucket
// follows the input order.
func Categorize(tasks []Task, today time.Time) Buckets {
	ref := today.Format(DateLayout)

	var b Buckets
	for _, t := range tasks {
		switch {
		case t.Completed:
			b.Completed = append(b.Completed, t)
		case t.DueDate == nil:
			b.NoDueDate = append(b.NoDueDate, t)
		default:
			due := t.DueDate.Format(DateLayout)
			switch {
			case due < ref:
				b.Overdue = append(b.Overdue, t)
			case due == ref:
				b.DueToday = append(b.DueToday, t)
			default:
				b.DueLater = append(b.DueLater, t)
			}
		}
	}
	return b
}
