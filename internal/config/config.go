// Package config defines service configuration and its loading.
//
// Values are layered: defaults from New, then an optional YAML file, then
// OLYMPICS_* environment variables.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8050".
	Addr string `koanf:"addr"`

	// AthletesPath points at the athlete-events CSV.
	AthletesPath string `koanf:"athletes_path"`

	// RegionsPath points at the NOC to region CSV.
	RegionsPath string `koanf:"regions_path"`

	// TopK is the number of best medal countries shown in the Sankey flow.
	TopK int `koanf:"top_k"`

	// HallOfFameSize caps the number of athletes in the hall of fame.
	HallOfFameSize int `koanf:"hall_of_fame_size"`

	// MinEditionYear is the oldest edition offered by the year selector.
	MinEditionYear int `koanf:"min_edition_year"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":8050",
		AthletesPath:   "data/athlete_events.csv",
		RegionsPath:    "data/noc_regions.csv",
		TopK:           3,
		HallOfFameSize: 10,
		MinEditionYear: 1999,
	}
}
