package recommend

// Weights holds every tunable constant used by the recommender. DefaultWeights
// matches the behaviour dashboards were calibrated against; operators may
// override individual values through configuration.
type Weights struct {
	LoadNew      float64 `mapstructure:"load_new"`
	LoadActive   float64 `mapstructure:"load_active"`
	LoadReview   float64 `mapstructure:"load_review"`
	LoadComplete float64 `mapstructure:"load_complete"`

	OverloadFactor      float64 `mapstructure:"overload_factor"`
	OverloadMinimum     float64 `mapstructure:"overload_minimum"`
	OverloadFallbackMin int     `mapstructure:"overload_fallback_min"`

	ExpertisePerMatch float64 `mapstructure:"expertise_per_match"`
	CompletionRatio   float64 `mapstructure:"completion_ratio"`
	OverloadPenalty   float64 `mapstructure:"overload_penalty"`
	UnderloadBoost    float64 `mapstructure:"underload_boost"`
	NewcomerBoost     float64 `mapstructure:"newcomer_boost"`
	NewcomerMaxItems  int     `mapstructure:"newcomer_max_items"`
	Stability         float64 `mapstructure:"stability"`

	BatchDecay      float64 `mapstructure:"batch_decay"`
	BatchFloor      float64 `mapstructure:"batch_floor"`
	DefaultPriority int     `mapstructure:"default_priority"`
}

func DefaultWeights() Weights {
	return Weights{
		LoadNew:      1.0,
		LoadActive:   1.0,
		LoadReview:   0.3,
		LoadComplete: 0.1,

		OverloadFactor:      1.5,
		OverloadMinimum:     3,
		OverloadFallbackMin: 2,

		ExpertisePerMatch: 30,
		CompletionRatio:   40,
		OverloadPenalty:   25,
		UnderloadBoost:    15,
		NewcomerBoost:     50,
		NewcomerMaxItems:  1,
		Stability:         5,

		BatchDecay:      0.15,
		BatchFloor:      0.5,
		DefaultPriority: 99,
	}
}
