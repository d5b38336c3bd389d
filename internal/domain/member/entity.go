package member

// Member is a roster entry. DisplayName is the identity used on work items.
type Member struct {
	ID          string
	DisplayName string
	Email       string
	TeamName    string
	IsActive    bool
}

// Names returns the display names of members in order.
func Names(members []Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.DisplayName)
	}
	return out
}
