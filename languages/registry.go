// Package languages is an in-memory registry of tokenizers keyed by language identifier.
package languages

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/factlang/factlex/lexer"
)

// Registry maps language identifiers to lexer definitions.
//
// The zero value is ready to use and a Registry is safe for concurrent use.
type Registry struct {
	lock sync.RWMutex
	defs map[string]*lexer.Definition
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register def under id. Registering the same id twice is an error.
func (r *Registry) Register(id string, def *lexer.Definition) error {
	if id == "" {
		return fmt.Errorf("language identifier is empty")
	}
	if def == nil {
		return fmt.Errorf("language %q: nil definition", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.defs[id]; ok {
		return fmt.Errorf("language %q is already registered", id)
	}
	if r.defs == nil {
		r.defs = map[string]*lexer.Definition{}
	}
	r.defs[id] = def
	return nil
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (*lexer.Definition, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	def, ok := r.defs[id]
	return def, ok
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Suggest the registered identifier closest to id, or "" if none is close.
func (r *Registry) Suggest(id string) string {
	ids := r.IDs()
	ranks := fuzzy.RankFindFold(id, ids)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDistance := "", len(id)/2+1
	for _, candidate := range ids {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(id), strings.ToLower(candidate))
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}
