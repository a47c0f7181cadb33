package types

import "fmt"

// GameMode is the local player's current game mode.
type GameMode uint8

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSpectator
)

func (m GameMode) String() string {
	switch m {
	case GameModeCreative:
		return "creative"
	case GameModeAdventure:
		return "adventure"
	case GameModeSpectator:
		return "spectator"
	default:
		return "survival"
	}
}

// ParseGameMode parses a game mode name.
// Valid modes are: survival, creative, adventure, spectator.
func ParseGameMode(s string) (GameMode, error) {
	switch s {
	case "survival":
		return GameModeSurvival, nil
	case "creative":
		return GameModeCreative, nil
	case "adventure":
		return GameModeAdventure, nil
	case "spectator":
		return GameModeSpectator, nil
	default:
		return GameModeSurvival, fmt.Errorf("unknown game mode: %s", s)
	}
}

// MarshalText encodes the mode by name.
func (m GameMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *GameMode) UnmarshalText(text []byte) error {
	mode, err := ParseGameMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
