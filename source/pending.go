package source

import (
	"github.com/tidwall/btree"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/token"
)

// Required selects how missing a file is handled (spec §3's SourceAsset
// record).
type Required int

const (
	RequiredYes Required = iota
	RequiredNo
	RequiredWarn
)

// PendingSource is a [[source=]] directive's queued work: a source file
// not yet primed into an open Tokenizer.
type PendingSource struct {
	FilePath        string
	FullPath        string
	Required        Required
	Generated       bool
	FromCommandLine bool
	InheritedTabStop int
	Triggering      *token.Token
	InheritedState  *compilestate.State
}

// PendingAsset is an [[asset=]] directive's queued work: a file to be
// copied (optionally renamed) rather than parsed.
type PendingAsset struct {
	FilePath        string
	FullPath        string
	RenamePath      string
	Required        Required
	Generated       bool
	FromCommandLine bool
	InheritedTabStop int
	Triggering      *token.Token
	InheritedState  *compilestate.State
}

// PendingSet is the include-dedup set keyed by canonical full path (spec
// §4.7, §9): an ordered set over btree.Map so Manager.Processed can be
// walked deterministically for diagnostics and tests, grounded on
// internal/interval/map.go's use of btree.Map as an ordered keyed
// container.
type PendingSet struct {
	tree btree.Map[string, struct{}]
}

// Add reports whether key was newly added (true) or already present
// (false) - the dedup test every include directive must perform before
// enqueuing a PendingSource/PendingAsset.
func (s *PendingSet) Add(key string) bool {
	if _, ok := s.tree.Get(key); ok {
		return false
	}
	s.tree.Set(key, struct{}{})
	return true
}

// Contains reports whether key has already been seen.
func (s *PendingSet) Contains(key string) bool {
	_, ok := s.tree.Get(key)
	return ok
}

// Keys returns every seen key in ascending order.
func (s *PendingSet) Keys() []string {
	out := make([]string, 0, s.tree.Len())
	it := s.tree.Iter()
	for ok := it.First(); ok; ok = it.Next() {
		out = append(out, it.Key())
	}
	return out
}
