package core

// RuntimeConfig carries what the platform knows when a game starts: the
// screen it draws into, how fast it is stepped and the seed for its piece
// order.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

const (
	defaultScreenW  = 80
	defaultScreenH  = 24
	defaultTickRate = 60
)

// WithDefaults fills unset or non-positive screen and rate fields. The seed
// is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = defaultScreenW, defaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = defaultTickRate
	}
	return c
}

// TickDuration returns the simulated time covered by one tick in milliseconds.
func (c RuntimeConfig) TickDuration() float64 {
	return 1000.0 / float64(c.WithDefaults().TickRate)
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Lines    int // Rows cleared so far
	Level    int // Starts at 1
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
