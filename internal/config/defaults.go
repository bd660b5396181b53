package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the default platform configuration.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		Playback: PlaybackConfig{
			TickRate:    30,
			StepDelayMs: 150,
		},
		Levels: LevelsConfig{
			Dir: "",
		},
	}
}
