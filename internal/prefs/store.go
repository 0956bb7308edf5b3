// Package prefs keeps per-client TLD favorites and recently used TLDs in a
// bounded in-memory cache. Entries may be evicted at any time.
package prefs

import (
	"errors"
	"regexp"
	"slices"
	"sync"

	"github.com/dgraph-io/ristretto"

	"domainscout/internal/tld"
)

const DefaultRecentCap = 10

var (
	ErrInvalidClient = errors.New("invalid client id")
	ErrInvalidTLD    = errors.New("invalid tld")
)

var clientPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type Preferences struct {
	Favorites []string `json:"favorites"`
	Recents   []string `json:"recents"`
}

type Store struct {
	cache     *ristretto.Cache
	recentCap int
	// mu serializes read-modify-write cycles; ristretto itself is safe for
	// concurrent use but has no compare-and-set.
	mu sync.Mutex
}

func New(maxSizePow2, recentCap int) (*Store, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	if recentCap <= 0 {
		recentCap = DefaultRecentCap
	}
	return &Store{cache: cache, recentCap: recentCap}, nil
}

func (s *Store) Get(client string) (Preferences, error) {
	if !clientPattern.MatchString(client) {
		return Preferences{}, ErrInvalidClient
	}
	return s.load(client).clone(), nil
}

func (s *Store) AddFavorite(client, suffix string) (Preferences, error) {
	return s.update(client, []string{suffix}, func(p *Preferences, tlds []string) {
		if !slices.Contains(p.Favorites, tlds[0]) {
			p.Favorites = append(p.Favorites, tlds[0])
		}
	})
}

func (s *Store) RemoveFavorite(client, suffix string) (Preferences, error) {
	return s.update(client, []string{suffix}, func(p *Preferences, tlds []string) {
		p.Favorites = slices.DeleteFunc(p.Favorites, func(f string) bool { return f == tlds[0] })
	})
}

// TouchRecent moves the given TLDs, in order, to the front of the recents
// list and keeps at most the configured number.
func (s *Store) TouchRecent(client string, suffixes []string) (Preferences, error) {
	return s.update(client, suffixes, func(p *Preferences, tlds []string) {
		for _, t := range slices.Backward(tlds) {
			p.Recents = slices.DeleteFunc(p.Recents, func(r string) bool { return r == t })
			p.Recents = slices.Insert(p.Recents, 0, t)
		}
		if len(p.Recents) > s.recentCap {
			p.Recents = p.Recents[:s.recentCap]
		}
	})
}

func (s *Store) ClearRecents(client string) (Preferences, error) {
	return s.update(client, nil, func(p *Preferences, _ []string) {
		p.Recents = []string{}
	})
}

func (s *Store) Close() {
	s.cache.Close()
}

func (s *Store) Stats() (hits, misses uint64, ratio float64) {
	metrics := s.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

func (s *Store) update(client string, suffixes []string, apply func(p *Preferences, tlds []string)) (Preferences, error) {
	if !clientPattern.MatchString(client) {
		return Preferences{}, ErrInvalidClient
	}

	tlds := make([]string, 0, len(suffixes))
	for _, raw := range suffixes {
		if !tld.IsLikelyValid(raw) {
			return Preferences{}, ErrInvalidTLD
		}
		tlds = append(tlds, tld.Normalize(raw))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load(client).clone()
	apply(&p, tlds)

	s.cache.Set(client, p, p.cost(client))
	s.cache.Wait()
	return p.clone(), nil
}

func (s *Store) load(client string) Preferences {
	val, found := s.cache.Get(client)
	if !found {
		return Preferences{Favorites: []string{}, Recents: []string{}}
	}
	return val.(Preferences)
}

func (p Preferences) clone() Preferences {
	return Preferences{
		Favorites: append([]string{}, p.Favorites...),
		Recents:   append([]string{}, p.Recents...),
	}
}

func (p Preferences) cost(client string) int64 {
	n := len(client)
	for _, f := range p.Favorites {
		n += len(f)
	}
	for _, r := range p.Recents {
		n += len(r)
	}
	return int64(n)
}
