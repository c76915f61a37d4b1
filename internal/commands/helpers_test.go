package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenlabs/wren/convention"
)

func TestLookupConvention(t *testing.T) {
	c, err := lookupConvention("SnakeCase")
	require.NoError(t, err)
	assert.Equal(t, convention.SnakeCase, c)
}

func TestLookupConventionUnknown(t *testing.T) {
	_, err := lookupConvention("NoSuchConvention")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wren list")
}

func TestConventionChoices(t *testing.T) {
	choices := conventionChoices()
	require.NotEmpty(t, choices)

	bySample := make(map[string]string, len(choices))
	for _, choice := range choices {
		bySample[choice.Name] = choice.Sample
	}

	assert.Equal(t, "my_example_name", bySample["SnakeCase"])
	assert.Equal(t, "MyExampleName", bySample["PascalCase"])
	assert.Equal(t, "MY-EXAMPLE-NAME", bySample["ScreamingKebabCase"])
}
