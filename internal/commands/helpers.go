package commands

import (
	"fmt"

	"github.com/wrenlabs/wren/convention"
	"github.com/wrenlabs/wren/input"
)

// sampleIdentifier is rendered into each convention when listing or picking,
// so users see the style rather than guess from the name.
const sampleIdentifier = "myExampleName"

// lookupConvention finds a registered convention or explains how to see
// what's available.
func lookupConvention(name string) (*convention.Convention, error) {
	c, ok := convention.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown convention %q (run 'wren list' to see what's registered)", name)
	}
	return c, nil
}

// conventionChoices builds picker entries for every registered convention.
func conventionChoices() []input.Choice {
	names := convention.Names()
	choices := make([]input.Choice, 0, len(names))
	for _, name := range names {
		c, ok := convention.Lookup(name)
		if !ok {
			continue
		}
		sample, err := convention.CamelCase.ConvertTo(c, sampleIdentifier)
		if err != nil {
			sample = sampleIdentifier
		}
		choices = append(choices, input.Choice{Name: name, Sample: sample})
	}
	return choices
}
