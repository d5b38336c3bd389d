package dto

type WorkItem struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	Priority      string `json:"priority"`
	AssignedTo    string `json:"assigned_to"`
	IterationPath string `json:"iteration_path"`
}

type SyncWorkItemsRequest struct {
	WorkItems []WorkItem `json:"work_items"`
}

type TeamSuggestionsRequest struct {
	IterationPath string   `json:"iteration_path"`
	TeamMembers   []string `json:"team_members"`
}

type AutoAssignRequest struct {
	IterationPath string `json:"iteration_path"`
}

type AssignTaskRequest struct {
	TaskID     int    `json:"task_id"`
	AssignedTo string `json:"assigned_to"`
}
