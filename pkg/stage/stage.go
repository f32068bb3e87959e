package stage

import (
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/picross/pkg/errors"
	"github.com/matzehuels/picross/pkg/nonogram"
)

// Stage maps level keys to grids.
type Stage map[string]nonogram.Grid

// Lookup returns the grid stored under key and whether it exists.
func (s Stage) Lookup(key string) (nonogram.Grid, bool) {
	g, ok := s[key]
	return g, ok
}

// Level returns the grid stored under key, or a LEVEL_NOT_FOUND error
// naming the available keys.
func (s Stage) Level(key string) (nonogram.Grid, error) {
	g, ok := s.Lookup(key)
	if !ok {
		if len(s) == 0 {
			return nil, errors.New(errors.ErrCodeLevelNotFound, "level %q not found: stage is empty", key)
		}
		return nil, errors.New(errors.ErrCodeLevelNotFound, "level %q not found (available: %s)",
			key, strings.Join(s.Keys(), ", "))
	}
	return g, nil
}

// Keys returns the level keys in stage order: keys that are canonical
// non-negative integers first, ascending by value, then all other keys
// in lexicographic order.
func (s Stage) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iok := indexKey(keys[i])
		nj, jok := indexKey(keys[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// indexKey parses k as a canonical array-index-like integer ("0", "12",
// but not "012" or "+1").
func indexKey(k string) (uint64, bool) {
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil || strconv.FormatUint(n, 10) != k {
		return 0, false
	}
	return n, true
}
