package game

import (
	"errors"
	"fmt"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/rules"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	MaxCPUs         = 3
	DefaultHandSize = 5
)

type Config struct {
	Seed     uint64
	CPUs     int
	HandSize int
	// Strict turns invariant violations into panics instead of resets.
	Strict bool
	// Rules is the starting playability graph. Nil means rules.Default().
	Rules *rules.Graph
}

func DefaultConfig() Config {
	return Config{
		CPUs:     MaxCPUs,
		HandSize: DefaultHandSize,
	}
}

func (c Config) Validate() error {
	if c.CPUs < 1 || c.CPUs > MaxCPUs {
		return fmt.Errorf("%w: cpus must be between 1 and %d, got %d", ErrInvalidConfig, MaxCPUs, c.CPUs)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("%w: hand size must be positive, got %d", ErrInvalidConfig, c.HandSize)
	}
	// One card has to be left over to start the discard pile.
	if (c.CPUs+1)*c.HandSize >= cards.DeckSize {
		return fmt.Errorf("%w: %d hands of %d cards do not fit in one deck", ErrInvalidConfig, c.CPUs+1, c.HandSize)
	}
	return nil
}

func (c Config) graph() rules.Graph {
	if c.Rules == nil {
		return rules.Default()
	}
	return *c.Rules
}
