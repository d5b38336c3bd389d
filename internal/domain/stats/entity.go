package stats

type DeveloperWorkload struct {
	Developer       string
	New             int
	Active          int
	Review          int
	Complete        int
	Total           int
	WeightedTotal   float64
	CompletionRatio float64
	Overloaded      bool
}

type WorkloadReport struct {
	IterationPath    string
	Developers       []DeveloperWorkload
	AvgWeightedTotal float64
	AvgNewCount      float64
}
