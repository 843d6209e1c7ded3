// Package replay runs scripted input against a game without a terminal.
// Scripts are YAML lists of ticks and the actions pressed on them, which
// makes runs reproducible for a given seed.
package replay

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fluxblocks/internal/core"
)

// Script is a recorded or hand-written input sequence.
type Script struct {
	Game     string `yaml:"game"`
	Seed     int64  `yaml:"seed"`
	TickRate int    `yaml:"tick_rate"`
	Ticks    int    `yaml:"ticks"` // Total ticks to run; 0 runs one tick past the last step
	Steps    []Step `yaml:"steps"`
}

// Step presses actions on a tick. Repeat presses them again on each of the
// following ticks.
type Step struct {
	Tick    int      `yaml:"tick"`
	Actions []string `yaml:"actions"`
	Repeat  int      `yaml:"repeat"`

	parsed []core.Action
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) normalize() error {
	if s.Game == "" {
		s.Game = "blocks"
	}
	if s.TickRate <= 0 {
		s.TickRate = 60
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Tick < 0 {
			return fmt.Errorf("step %d: negative tick %d", i, st.Tick)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("step %d: negative repeat %d", i, st.Repeat)
		}
		st.parsed = st.parsed[:0]
		for _, name := range st.Actions {
			a, err := core.ParseAction(name)
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			st.parsed = append(st.parsed, a)
		}
	}
	slices.SortStableFunc(s.Steps, func(a, b Step) int { return a.Tick - b.Tick })
	if s.Ticks <= 0 {
		for _, st := range s.Steps {
			s.Ticks = max(s.Ticks, st.Tick+st.Repeat+1)
		}
	}
	return nil
}

// Frames expands the steps into one input frame per tick.
func (s *Script) Frames() []core.InputFrame {
	frames := make([]core.InputFrame, s.Ticks)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}
	for _, st := range s.Steps {
		for t := st.Tick; t <= st.Tick+st.Repeat && t < s.Ticks; t++ {
			for _, a := range st.parsed {
				frames[t].Set(a)
			}
		}
	}
	return frames
}
