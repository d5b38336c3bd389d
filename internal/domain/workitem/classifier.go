package workitem

import "strings"

// Vocabulary lists the raw tracker states that map onto each category.
type Vocabulary struct {
	New      []string `mapstructure:"new"`
	Active   []string `mapstructure:"active"`
	Review   []string `mapstructure:"review"`
	Complete []string `mapstructure:"complete"`
}

// DefaultVocabulary returns labels commonly used by Azure Boards style trackers.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		New:      []string{"Dev-New", "Dev - New", "DevNew", "New-Dev", "Dev New", "New"},
		Active:   []string{"Active", "In Progress", "Committed"},
		Review:   []string{"Code Review", "In Review", "Review"},
		Complete: []string{"Done", "Resolved", "Completed", "Complete", "Verified", "Closed"},
	}
}

type labelSet struct {
	category Category
	labels   map[string]struct{}
}

// Classifier maps raw status strings onto categories. It holds no defaults of
// its own: an empty Vocabulary classifies everything as uncategorized.
type Classifier struct {
	sets []labelSet
}

func NewClassifier(v Vocabulary) *Classifier {
	return &Classifier{
		sets: []labelSet{
			{CategoryNew, normalizeLabels(v.New)},
			{CategoryActive, normalizeLabels(v.Active)},
			{CategoryReview, normalizeLabels(v.Review)},
			{CategoryComplete, normalizeLabels(v.Complete)},
		},
	}
}

// Classify returns the first category (new, active, review, complete) whose
// label set contains the status, ignoring case and surrounding whitespace.
func (c *Classifier) Classify(status string) Category {
	key := normalizeLabel(status)
	if key == "" {
		return CategoryUncategorized
	}
	for _, s := range c.sets {
		if _, ok := s.labels[key]; ok {
			return s.category
		}
	}
	return CategoryUncategorized
}

func (c *Classifier) IsNew(status string) bool {
	return c.Classify(status) == CategoryNew
}

func normalizeLabels(labels []string) map[string]struct{} {
	out := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if k := normalizeLabel(l); k != "" {
			out[k] = struct{}{}
		}
	}
	return out
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Assignee returns the trimmed assignee name, empty when unassigned.
func Assignee(w WorkItem) string {
	return strings.TrimSpace(w.AssignedTo)
}
