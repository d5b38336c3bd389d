package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"sprintassign/internal/domain/recommend"
	"sprintassign/internal/domain/workitem"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	LogLevel    string

	EventWorkers int
	EventQueue   int

	Vocabulary workitem.Vocabulary
	Weights    recommend.Weights
}

// Load reads the environment and, when CONFIG_FILE is set, a YAML file with
// status label and scoring weight overrides. Environment values win.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("event_workers", 4)
	v.SetDefault("event_queue", 64)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"database_url", "http_addr", "log_level", "config_file", "event_workers", "event_queue"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		DatabaseURL:  v.GetString("database_url"),
		HTTPAddr:     v.GetString("http_addr"),
		LogLevel:     v.GetString("log_level"),
		EventWorkers: v.GetInt("event_workers"),
		EventQueue:   v.GetInt("event_queue"),
		Weights:      recommend.DefaultWeights(),
	}

	var labels workitem.Vocabulary
	if err := v.UnmarshalKey("status", &labels); err != nil {
		return Config{}, fmt.Errorf("decode status labels: %w", err)
	}
	cfg.Vocabulary = withDefaultLabels(labels, workitem.DefaultVocabulary())
	if err := v.UnmarshalKey("scoring", &cfg.Weights); err != nil {
		return Config{}, fmt.Errorf("decode scoring weights: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaultLabels replaces every configured label set wholesale and keeps
// the default only for sets left unset.
func withDefaultLabels(v, def workitem.Vocabulary) workitem.Vocabulary {
	pick := func(set, fallback []string) []string {
		if len(set) == 0 {
			return fallback
		}
		return set
	}
	return workitem.Vocabulary{
		New:      pick(v.New, def.New),
		Active:   pick(v.Active, def.Active),
		Review:   pick(v.Review, def.Review),
		Complete: pick(v.Complete, def.Complete),
	}
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.EventWorkers < 1 {
		return fmt.Errorf("EVENT_WORKERS must be positive, got %d", c.EventWorkers)
	}
	w := c.Weights
	if w.BatchFloor < 0 || w.BatchFloor > 1 {
		return fmt.Errorf("scoring.batch_floor must be within [0, 1], got %v", w.BatchFloor)
	}
	if w.OverloadFactor <= 0 {
		return fmt.Errorf("scoring.overload_factor must be positive, got %v", w.OverloadFactor)
	}
	return nil
}
