// Package presets holds the built-in keyword lists offered for each side of
// the expansion.
package presets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var embedded []byte

var ErrUnknownPreset = errors.New("unknown preset")

// Side selects the keyword list a preset fills.
type Side string

const (
	First  Side = "first"
	Second Side = "second"
)

type Preset struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

type Catalog struct {
	First  []Preset `yaml:"first" json:"first"`
	Second []Preset `yaml:"second" json:"second"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded presets: %v", err))
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if c.First == nil {
		c.First = []Preset{}
	}
	if c.Second == nil {
		c.Second = []Preset{}
	}
	return &c, nil
}

func (c *Catalog) list(side Side) []Preset {
	if side == Second {
		return c.Second
	}
	return c.First
}

// Names lists the presets of one side in catalog order.
func (c *Catalog) Names(side Side) []string {
	list := c.list(side)
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

// Keywords returns a preset as keyword text, ready for the expansion. Names
// match case-insensitively.
func (c *Catalog) Keywords(side Side, name string) (string, error) {
	for _, p := range c.list(side) {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return strings.Join(p.Keywords, ", "), nil
		}
	}
	return "", fmt.Errorf("%w %q for the %s list", ErrUnknownPreset, name, side)
}
