package parserctx

import "github.com/zaxc/corec/token"

// DefineKeywordAlias installs a keyword alias visible in this scope and
// every child scope until shadowed by a nearer one (spec supplement:
// "Parser_Alias.cpp's alias shadowing").
func (c *Context) DefineKeywordAlias(literal string, replacement *token.Token) {
	if c.keywordAliases == nil {
		c.keywordAliases = map[string]*token.Token{}
	}
	c.keywordAliases[literal] = replacement
}

// DefineOperatorAlias installs an operator alias visible in this scope.
func (c *Context) DefineOperatorAlias(literal string, replacement *token.Token) {
	if c.operatorAliases == nil {
		c.operatorAliases = map[string]*token.Token{}
	}
	c.operatorAliases[literal] = replacement
}

// AliasLookup resolves tok's deferred keyword/operator alias, memoized
// via tok's one-shot AliasSearched flag (spec §4.6, §9's "alias-searched
// is a one-shot memo per token, not per lookup context"): once a literal
// has been searched - found or not - re-entering the same scope chain
// never re-searches it. Each scope level is checked for a keyword alias
// before an operator alias; an inner scope's alias shadows an outer
// scope's of the same spelling rather than merging with it.
func (c *Context) AliasLookup(tok *token.Token) (*token.Token, bool) {
	if tok.AliasSearched {
		return tok.Alias, tok.Alias != nil
	}
	for cur := c; cur != nil; cur = cur.parent {
		if repl, ok := cur.keywordAliases[tok.Text]; ok {
			tok.Alias, tok.AliasSearched = repl, true
			return repl, true
		}
		if repl, ok := cur.operatorAliases[tok.Text]; ok {
			tok.Alias, tok.AliasSearched = repl, true
			return repl, true
		}
	}
	tok.AliasSearched = true
	return nil, false
}

// DeclareTypeName records name as a known type name in this scope.
func (c *Context) DeclareTypeName(name string) {
	if c.typeNames == nil {
		c.typeNames = map[string]struct{}{}
	}
	c.typeNames[name] = struct{}{}
}

// IsTypeName reports whether name was declared a type name in this scope
// or any enclosing one.
func (c *Context) IsTypeName(name string) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if _, ok := cur.typeNames[name]; ok {
			return true
		}
	}
	return false
}
