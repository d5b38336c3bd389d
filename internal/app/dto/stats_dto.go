package dto

type DeveloperWorkload struct {
	Developer       string  `json:"developer"`
	New             int     `json:"new"`
	Active          int     `json:"active"`
	Review          int     `json:"review"`
	Complete        int     `json:"complete"`
	Total           int     `json:"total"`
	WeightedTotal   float64 `json:"weighted_total"`
	CompletionRatio float64 `json:"completion_ratio"`
	Overloaded      bool    `json:"overloaded"`
}

type WorkloadResponse struct {
	IterationPath    string              `json:"iteration_path"`
	AvgWeightedTotal float64             `json:"avg_weighted_total"`
	AvgNewCount      float64             `json:"avg_new_count"`
	Developers       []DeveloperWorkload `json:"developers"`
}
