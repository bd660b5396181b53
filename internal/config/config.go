// Package config provides YAML-based configuration loading for the
// quest platform.
package config

// QuestConfig contains all platform configuration.
type QuestConfig struct {
	Playback PlaybackConfig `yaml:"playback"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// PlaybackConfig defines timing parameters.
type PlaybackConfig struct {
	TickRate    int `yaml:"tick_rate"`     // Simulation ticks per second in the TUI
	StepDelayMs int `yaml:"step_delay_ms"` // Delay between scripted commands in 'run' playback
}

// LevelsConfig defines where extra level files are discovered.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Directory scanned for YAML levels; empty disables scanning
}
