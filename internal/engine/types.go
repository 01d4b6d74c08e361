package engine

import (
	"github.com/gulievsadigg/carbon-emission/internal/advice"
	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/greenops"
)

// Result is the outcome of evaluating one submission.
type Result struct {
	Organization string                `json:"organization"`
	Record       emissions.InputRecord `json:"input"`
	Breakdown    emissions.Breakdown   `json:"breakdown"`
	Branch       advice.Branch         `json:"advice_branch"`
	Advice       []string              `json:"advice"`

	// Equivalencies is nil when disabled or when the total is too small
	// or negative to express.
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
}

