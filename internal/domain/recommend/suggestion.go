package recommend

import (
	"fmt"
	"strconv"
	"strings"
)

const nameDelimiter = " ("

type Suggestion struct {
	TaskID    int
	Developer string
	Reason    string
}

// Text renders the suggestion as "<developer> (<reason>)".
func (s Suggestion) Text() string {
	return s.Developer + nameDelimiter + s.Reason + ")"
}

// ExtractDeveloperName returns everything before the first " (" of a
// suggestion text, so multi-word display names survive intact.
func ExtractDeveloperName(text string) string {
	if i := strings.Index(text, nameDelimiter); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return strings.TrimSpace(text)
}

// ToMap keys suggestion texts by task id.
func ToMap(suggestions []Suggestion) map[string]string {
	out := make(map[string]string, len(suggestions))
	for _, s := range suggestions {
		out[strconv.Itoa(s.TaskID)] = s.Text()
	}
	return out
}

// FilterByRoster keeps entries whose developer matches one of names, ignoring case.
func FilterByRoster(suggestions map[string]string, names []string) map[string]string {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			allowed[n] = struct{}{}
		}
	}

	out := make(map[string]string)
	for taskID, text := range suggestions {
		name := strings.ToLower(ExtractDeveloperName(text))
		if _, ok := allowed[name]; ok {
			out[taskID] = text
		}
	}
	return out
}

const reasonLeastAssigned = "least assigned"

func explainExpertise(count int) string {
	if count > 0 {
		return fmt.Sprintf("past expertise (%d similar tasks)", count)
	}
	return "no specific expertise"
}

func explainWorkload(c Counts, avg float64, weights Weights) string {
	switch {
	case c.WeightedTotal < avg && c.Total <= weights.NewcomerMaxItems:
		return "new/under-utilized developer"
	case c.WeightedTotal < avg:
		return fmt.Sprintf("below average workload (%.1f vs %.1f)", c.WeightedTotal, avg)
	case c.WeightedTotal > avg:
		return fmt.Sprintf("above average workload (%.1f vs %.1f)", c.WeightedTotal, avg)
	default:
		return "average workload"
	}
}

func explainChoice(previous string, e ScoreEntry, c Counts, avg float64, weights Weights) string {
	detail := explainExpertise(e.Breakdown.ExpertiseCount) + ", " + explainWorkload(c, avg, weights)
	if previous == "" {
		return "assigned: " + detail
	}
	return fmt.Sprintf("reassigned from %s (overloaded): %s", previous, detail)
}
