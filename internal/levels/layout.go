// Package levels provides playfield layout parsing and file-based
// level loading. This package depends on core and registry but the
// engine does not depend on it beyond the parsed result.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// Layout cell markers.
const (
	MarkWall    = '#'
	MarkFlag    = 'F'
	MarkHero    = 'H'
	MarkKey     = 'K'
	MarkPadlock = 'P'
)

// Parsed is the result of parsing a text layout: the immutable level
// plus the attempt-start facts the engine needs.
type Parsed struct {
	Level     *core.Level
	HeroStart core.Point
	Key       *core.Point // nil if the layout has no key
	Padlock   *core.Point // nil if the layout has no padlock
}

// ParseLayout parses a text map, one string per row. Width is the
// longest line; short lines are padded with floor. Unknown characters
// are floor. The layout must contain exactly one flag and one hero
// start; key and padlock are optional.
func ParseLayout(lines []string) (Parsed, error) {
	var (
		walls     []core.Point
		flag      *core.Point
		heroStart *core.Point
		key       *core.Point
		padlock   *core.Point
		width     int
	)

	height := len(lines)
	if height == 0 {
		return Parsed{}, fmt.Errorf("levels: empty layout")
	}

	for y, line := range lines {
		runes := []rune(line)
		if len(runes) > width {
			width = len(runes)
		}
		for x, ch := range runes {
			p := core.Point{X: x, Y: y}
			switch ch {
			case MarkWall:
				walls = append(walls, p)
			case MarkFlag:
				if flag != nil {
					return Parsed{}, fmt.Errorf("levels: multiple flags (rows %d and %d)", flag.Y, y)
				}
				fp := p
				flag = &fp
			case MarkHero:
				if heroStart != nil {
					return Parsed{}, fmt.Errorf("levels: multiple hero starts (rows %d and %d)", heroStart.Y, y)
				}
				hp := p
				heroStart = &hp
			case MarkKey:
				kp := p
				key = &kp
			case MarkPadlock:
				pp := p
				padlock = &pp
			}
		}
	}

	if flag == nil {
		return Parsed{}, fmt.Errorf("levels: layout has no flag cell")
	}
	if heroStart == nil {
		return Parsed{}, fmt.Errorf("levels: layout has no hero start")
	}

	return Parsed{
		Level:     core.NewLevel(width, height, *flag, walls),
		HeroStart: *heroStart,
		Key:       key,
		Padlock:   padlock,
	}, nil
}
