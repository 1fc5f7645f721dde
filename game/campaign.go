package game

import "fmt"

// Campaign walks a simulation through a fixed list of levels.
// Between levels the player is healed by the configured amount.
type Campaign struct {
	sim    *Simulation
	levels []LevelConfig
	index  int
	done   bool
}

// NewCampaign starts the first level on sim
func NewCampaign(sim *Simulation, levels []LevelConfig) (*Campaign, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: campaign needs at least one level", ErrInvalidConfig)
	}
	c := &Campaign{
		sim:    sim,
		levels: append([]LevelConfig(nil), levels...),
	}
	if err := sim.StartLevel(c.levels[0]); err != nil {
		return nil, fmt.Errorf("level 1: %w", err)
	}
	return c, nil
}

// Advance moves to the next level after the current one is cleared.
// It returns false once the last level has been cleared (victory).
// On error the campaign stays on the current level.
func (c *Campaign) Advance() (bool, error) {
	if c.done {
		return false, nil
	}
	if c.index+1 >= len(c.levels) {
		c.done = true
		return false, nil
	}

	// The current level stays in play when the next one cannot start
	next := c.index + 1
	if err := c.sim.StartLevel(c.levels[next]); err != nil {
		return false, fmt.Errorf("level %d: %w", next+1, err)
	}
	c.index = next
	c.sim.HealPlayer(c.sim.Config().HealBetweenLevels)
	return true, nil
}

// Level returns the current level number, starting at 1
func (c *Campaign) Level() int {
	return c.index + 1
}

// Levels returns the number of levels in the campaign
func (c *Campaign) Levels() int {
	return len(c.levels)
}

// Done reports whether every level has been cleared
func (c *Campaign) Done() bool {
	return c.done
}

// Simulation returns the simulation driven by the campaign
func (c *Campaign) Simulation() *Simulation {
	return c.sim
}
