package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainscout/internal/candidate"
	"domainscout/internal/presets"
)

func TestDefault(t *testing.T) {
	c := presets.Default()

	assert.Equal(t, []string{"Prefix Brandables", "Prefix Words", "Animals"}, c.Names(presets.First))
	assert.Equal(t, []string{"Suffix Brandables", "Suffix Words", "Animals"}, c.Names(presets.Second))
}

func TestKeywords(t *testing.T) {
	c := presets.Default()

	kw, err := c.Keywords(presets.First, "animals")
	require.NoError(t, err)

	words := candidate.SplitKeywords(kw)
	require.NotEmpty(t, words)
	assert.Equal(t, "alligator", words[0])
}

func TestKeywords_Unknown(t *testing.T) {
	_, err := presets.Default().Keywords(presets.Second, "Prefix Words")

	assert.ErrorIs(t, err, presets.ErrUnknownPreset)
}

func TestParse(t *testing.T) {
	c, err := presets.Parse([]byte("first:\n  - name: Tech\n    keywords: [\"on\", \"no\", cloud]\n"))
	require.NoError(t, err)

	kw, err := c.Keywords(presets.First, "Tech")
	require.NoError(t, err)
	assert.Equal(t, "on, no, cloud", kw)
	assert.Empty(t, c.Names(presets.Second))

	_, err = presets.Parse([]byte("first: [unclosed"))
	assert.Error(t, err)
}
