package token

// node is one link in a TokenList. Nodes are never copied: splicing a
// range of tokens from one list to another relinks the same *node
// values, so an Iterator captured before a splice still identifies the
// same token afterward (just possibly in a different owning list).
type node struct {
	tok        *Token
	prev, next *node
}

// TokenList is a doubly-linked sequence of tokens supporting splice-based
// extraction and insertion: the lexer appends as it scans, the parser
// driver pops tokens off the front, and Extract/InsertBefore/InsertAfter
// move whole ranges between lists without copying the tokens.
//
// The zero value is not usable; use NewList.
type TokenList struct {
	// root is a sentinel node: root.next is the first real node,
	// root.prev is the last. An empty list has root pointing to itself.
	root node
	len  int
}

// NewList returns an empty TokenList.
func NewList() *TokenList {
	l := &TokenList{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len reports the number of tokens currently in the list.
func (l *TokenList) Len() int { return l.len }

// Empty reports whether the list holds no tokens.
func (l *TokenList) Empty() bool { return l.len == 0 }

// Clear empties the list. It does not mutate any Token values; detached
// nodes are simply dropped.
func (l *TokenList) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

func (l *TokenList) insertNodeBefore(n, at *node) {
	p := at.prev
	n.prev = p
	n.next = at
	p.next = n
	at.prev = n
	l.len++
}

func (l *TokenList) unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.len--
}

// PushBack appends tok to the end of the list.
func (l *TokenList) PushBack(tok *Token) Iterator {
	n := &node{tok: tok}
	l.insertNodeBefore(n, &l.root)
	return Iterator{list: l, node: n}
}

// PushFront prepends tok to the front of the list.
func (l *TokenList) PushFront(tok *Token) Iterator {
	n := &node{tok: tok}
	l.insertNodeBefore(n, l.root.next)
	return Iterator{list: l, node: n}
}

// PopFront removes and returns the first token, or nil, false if empty.
func (l *TokenList) PopFront() (*Token, bool) {
	if l.len == 0 {
		return nil, false
	}
	n := l.root.next
	l.unlink(n)
	return n.tok, true
}

// PopBack removes and returns the last token, or nil, false if empty.
func (l *TokenList) PopBack() (*Token, bool) {
	if l.len == 0 {
		return nil, false
	}
	n := l.root.prev
	l.unlink(n)
	return n.tok, true
}

// Front returns the first token, or nil if the list is empty.
func (l *TokenList) Front() *Token {
	if l.len == 0 {
		return nil
	}
	return l.root.next.tok
}

// Back returns the last token, or nil if the list is empty.
func (l *TokenList) Back() *Token {
	if l.len == 0 {
		return nil
	}
	return l.root.prev.tok
}

// Begin returns an iterator at the first token.
func (l *TokenList) Begin() Iterator {
	return Iterator{list: l, node: l.root.next}
}

// End returns the past-the-end iterator (never dereferenceable).
func (l *TokenList) End() Iterator {
	return Iterator{list: l, node: &l.root}
}

// At performs a linear walk to the n'th token (0-based) and returns an
// iterator to it. It returns End() if n is out of range.
func (l *TokenList) At(n int) Iterator {
	if n < 0 || n >= l.len {
		return l.End()
	}
	cur := l.root.next
	for i := 0; i < n; i++ {
		cur = cur.next
	}
	return Iterator{list: l, node: cur}
}

// HasAhead reports whether at least n more tokens follow pos (n==0 is
// always true for a valid non-end position).
func (l *TokenList) HasAhead(pos Iterator, n int) bool {
	cur := pos.node
	for i := 0; i < n; i++ {
		if cur == &l.root {
			return false
		}
		cur = cur.next
	}
	return cur != &l.root
}

// HasBehind reports whether at least n tokens precede pos.
func (l *TokenList) HasBehind(pos Iterator, n int) bool {
	cur := pos.node
	for i := 0; i < n; i++ {
		if cur.prev == &l.root {
			return false
		}
		cur = cur.prev
	}
	return true
}

// Extract detaches the half-open range [first, last) from l and returns
// it as a new, independent TokenList. The detached nodes keep their
// identity; a splice of the result back in (InsertBefore/InsertAfter)
// restores the original list byte-for-byte.
func (l *TokenList) Extract(first, last Iterator) *TokenList {
	out := NewList()
	if first.list != l || last.list != l {
		return out
	}
	cur := first.node
	for cur != last.node && cur != &l.root {
		next := cur.next
		l.unlink(cur)
		out.insertNodeBefore(cur, &out.root)
		cur = next
	}
	return out
}

// ExtractFromStartToPos extracts [Begin, pos).
func (l *TokenList) ExtractFromStartToPos(pos Iterator) *TokenList {
	return l.Extract(l.Begin(), pos)
}

// ExtractFromPosToEnd extracts [pos, End).
func (l *TokenList) ExtractFromPosToEnd(pos Iterator) *TokenList {
	return l.Extract(pos, l.End())
}

// Erase removes and discards the half-open range [first, last).
func (l *TokenList) Erase(first, last Iterator) {
	l.Extract(first, last)
}

// InsertBefore splices every node out of other, in order, to sit
// immediately before pos in l. other is left empty.
func (l *TokenList) InsertBefore(pos Iterator, other *TokenList) {
	if other == nil || other.len == 0 {
		return
	}
	cur := other.root.next
	for cur != &other.root {
		next := cur.next
		other.unlink(cur)
		l.insertNodeBefore(cur, pos.node)
		cur = next
	}
}

// InsertAfter splices every node out of other, in order, to sit
// immediately after pos in l. other is left empty.
func (l *TokenList) InsertAfter(pos Iterator, other *TokenList) {
	l.InsertBefore(Iterator{list: l, node: pos.node.next}, other)
}

// Iterator is a position within a TokenList. The zero value is not
// usable. Iterators from two different lists never compare equal, even
// if they happen to wrap the same underlying node pointer (which can
// only happen transiently mid-splice, never through public API).
type Iterator struct {
	list *TokenList
	node *node
}

// IsEnd reports whether it is the list's past-the-end position.
func (it Iterator) IsEnd() bool {
	return it.node == &it.list.root
}

// Token dereferences the iterator. Calling it on End() panics, matching
// the precondition every caller in this codebase already checks for with
// IsEnd.
func (it Iterator) Token() *Token {
	return it.node.tok
}

// Next returns the iterator one position forward.
func (it Iterator) Next() Iterator {
	return Iterator{list: it.list, node: it.node.next}
}

// Prev returns the iterator one position back.
func (it Iterator) Prev() Iterator {
	return Iterator{list: it.list, node: it.node.prev}
}

// Equal reports whether it and other identify the same position in the
// same list.
func (it Iterator) Equal(other Iterator) bool {
	return it.list == other.list && it.node == other.node
}
