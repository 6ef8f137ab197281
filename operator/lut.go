package operator

import "sort"

type symbolEntry struct {
	text string
	code Code
}

// Lut is the pre-built operator lookup table: a length-bucketed,
// first-byte-indexed table for longest-match recognition, a name map for
// canonical code lookup, and the conflict relation for lexemes that spell
// more than one operator.
type Lut struct {
	// buckets[firstByte][length] holds every distinct spelling of that
	// length starting with that byte. When two codes share a spelling,
	// only the last-declared code (by Code ordinal) occupies the slot;
	// see the construction loop below.
	buckets [256]map[int][]symbolEntry
	byName  map[string]Code
	conflicts map[Code]map[Code]struct{}
}

// New builds the operator table by walking the Code enumeration once.
func New() *Lut {
	lut := &Lut{byName: map[string]Code{}, conflicts: map[Code]map[Code]struct{}{}}

	// Registration order: ascending Code ordinal. When a spelling repeats,
	// the later code overwrites the earlier one's slot in both the
	// per-length bucket and the name map, so the "last declared wins" as
	// the default, context-free canonical code for that spelling.
	lengthIndex := map[byte]map[int]map[string]Code{}
	for c := Code(0); c < totalCodes; c++ {
		sym := spelling[c]
		if sym == "" {
			continue
		}
		first := sym[0]
		if lengthIndex[first] == nil {
			lengthIndex[first] = map[int]map[string]Code{}
		}
		if lengthIndex[first][len(sym)] == nil {
			lengthIndex[first][len(sym)] = map[string]Code{}
		}
		lengthIndex[first][len(sym)][sym] = c
		lut.byName[sym] = c
	}

	for first, byLen := range lengthIndex {
		lut.buckets[first] = map[int][]symbolEntry{}
		for length, byName := range byLen {
			entries := make([]symbolEntry, 0, len(byName))
			for name, code := range byName {
				entries = append(entries, symbolEntry{text: name, code: code})
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].text < entries[j].text })
			lut.buckets[first][length] = entries
		}
	}

	// Conflict sets: every code that shares a spelling with some other
	// code joins that spelling's conflict set, including itself.
	bySpelling := map[string][]Code{}
	for c := Code(0); c < totalCodes; c++ {
		if spelling[c] == "" {
			continue
		}
		bySpelling[spelling[c]] = append(bySpelling[spelling[c]], c)
	}
	for _, codes := range bySpelling {
		if len(codes) < 2 {
			continue
		}
		set := map[Code]struct{}{}
		for _, c := range codes {
			set[c] = struct{}{}
		}
		for _, c := range codes {
			lut.conflicts[c] = set
		}
	}

	return lut
}

// Lookup finds the longest known operator symbol that prefixes s,
// returning its canonical code. It reports false if no symbol matches.
func (l *Lut) Lookup(s []byte) (Code, bool) {
	if len(s) == 0 {
		return 0, false
	}
	byLen := l.buckets[s[0]]
	if byLen == nil {
		return 0, false
	}
	maxLen := 0
	for length := range byLen {
		if length > maxLen {
			maxLen = length
		}
	}
	if maxLen > len(s) {
		maxLen = len(s)
	}
	for length := maxLen; length > 0; length-- {
		entries, ok := byLen[length]
		if !ok {
			continue
		}
		candidate := string(s[:length])
		for _, e := range entries {
			if e.text == candidate {
				return e.code, true
			}
		}
	}
	return 0, false
}

// Symbol returns the canonical spelling for a code.
func (l *Lut) Symbol(c Code) string {
	return c.String()
}

// Conflicts returns the set of codes that share a spelling with c,
// including c itself. It is empty (nil) when c's spelling is unique.
func (l *Lut) Conflicts(c Code) map[Code]struct{} {
	return l.conflicts[c]
}

// HasConflicts reports whether c's spelling is shared by another code.
func (l *Lut) HasConflicts(c Code) bool {
	return len(l.conflicts[c]) > 0
}

// IsOrAlternative reports whether tok equals want, or is a member of
// want's conflict set. This is how the downstream grammar treats e.g.
// prefix and postfix "++" as interchangeable until it has enough context
// to tell them apart.
func (l *Lut) IsOrAlternative(tok, want Code) bool {
	if tok == want {
		return true
	}
	set := l.conflicts[want]
	if set == nil {
		return false
	}
	_, ok := set[tok]
	return ok
}
