package dto

type TeamMember struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type Team struct {
	TeamName string       `json:"team_name"`
	Members  []TeamMember `json:"members"`
}

type Member struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	TeamName    string `json:"team_name"`
	IsActive    bool   `json:"is_active"`
}
