// Package jobid issues short, URL-safe job identifiers.
package jobid

import (
	"sync/atomic"

	"github.com/sqids/sqids-go"
)

type Generator struct {
	sqids *sqids.Sqids
	next  atomic.Uint64
}

// New starts the sequence at seed. Seeding from the start time keeps ids
// distinct across restarts.
func New(seed uint64) (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	g := &Generator{sqids: s}
	g.next.Store(seed)
	return g, nil
}

func (g *Generator) Generate(n uint64) (string, error) {
	return g.sqids.Encode([]uint64{n})
}

func (g *Generator) Next() (string, error) {
	return g.Generate(g.next.Add(1) - 1)
}
