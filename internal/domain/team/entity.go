package team

import (
	"strings"

	"sprintassign/internal/domain/member"
)

// Team groups roster members; a sub-team roster can scope recommendations.
type Team struct {
	Name    string
	Members []member.Member
}

// DisplayNames returns the members' names, which is the list the team-scoped
// suggestion endpoint filters by.
func (t Team) DisplayNames() []string {
	return member.Names(t.Members)
}

// normalized trims names and reports the first member that breaks the roster
// rules: a blank id or name, or an id or display name used twice. Display
// names compare case-insensitively because work items are matched that way.
func normalized(t Team) (Team, string) {
	out := Team{Name: strings.TrimSpace(t.Name), Members: make([]member.Member, 0, len(t.Members))}
	if out.Name == "" {
		return Team{}, "team_name is required"
	}

	ids := make(map[string]struct{}, len(t.Members))
	names := make(map[string]struct{}, len(t.Members))
	for _, m := range t.Members {
		m.ID = strings.TrimSpace(m.ID)
		m.DisplayName = strings.TrimSpace(m.DisplayName)
		m.TeamName = out.Name

		if m.ID == "" || m.DisplayName == "" {
			return Team{}, "member id and display_name are required"
		}
		if _, dup := ids[m.ID]; dup {
			return Team{}, "duplicate member id " + m.ID
		}
		key := strings.ToLower(m.DisplayName)
		if _, dup := names[key]; dup {
			return Team{}, "duplicate display_name " + m.DisplayName
		}
		ids[m.ID] = struct{}{}
		names[key] = struct{}{}

		out.Members = append(out.Members, m)
	}
	return out, ""
}
