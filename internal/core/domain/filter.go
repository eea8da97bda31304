package domain

type FilterType string

const (
	FilterAll    FilterType = "all"
	FilterMine   FilterType = "my-tasks"
	FilterOthers FilterType = "other-tasks"
)

// ParseFilter accepts only the persisted filter values.
func ParseFilter(value string) (FilterType, error) {
	switch f := FilterType(value); f {
	case FilterAll, FilterMine, FilterOthers:
		return f, nil
	}
	return "", ErrInvalidFilter
}

// ApplyFilter returns a new slice; tasks is never modified and order is kept.
func ApplyFilter(tasks []Task, filter FilterType, currentUserID string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		switch filter {
		case FilterMine:
			if task.CreatedBy != currentUserID {
				continue
			}
		case FilterOthers:
			if task.CreatedBy == currentUserID {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}
