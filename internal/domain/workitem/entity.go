package workitem

// WorkItem is a read-only snapshot of a tracker item.
type WorkItem struct {
	ID            int
	Title         string
	Status        string
	Type          string
	Priority      string
	AssignedTo    string
	IterationPath string
}

// IsAssigned reports whether the item has a non-blank assignee.
func (w WorkItem) IsAssigned() bool {
	return Assignee(w) != ""
}

type Category string

const (
	CategoryNew           Category = "new"
	CategoryActive        Category = "active"
	CategoryReview        Category = "review"
	CategoryComplete      Category = "complete"
	CategoryUncategorized Category = "uncategorized"
)
