package bot

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown bot level")

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level Level) (Brain, error) {
	switch level {
	case LevelBasic:
		return &BasicBot{}, nil
	case LevelSmart:
		return &SmartBot{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// ParseLevel accepts a level name in any case. An empty name means LevelSmart.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LevelSmart, nil
	case LevelBasic, LevelSmart:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
