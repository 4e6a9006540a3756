package syntax

import (
	"strings"

	"shard/internal/token"
)

// Tokens appends every terminal token under n, in source order.
func Tokens(n Node) []token.Token {
	var out []token.Token
	collectTokens(n, &out)
	return out
}

func collectTokens(n Node, out *[]token.Token) {
	for _, el := range n.Elements() {
		if el.Token != nil {
			*out = append(*out, *el.Token)
			continue
		}
		if el.Node != nil {
			collectTokens(el.Node, out)
		}
	}
}

// Text reconstructs the exact source slice the node covers, trivia
// included, by concatenating its terminal tokens.
func Text(n Node) string {
	var sb strings.Builder
	for _, tk := range Tokens(n) {
		sb.WriteString(tk.FullText())
	}
	return sb.String()
}

// FirstToken returns the first terminal token under n.
func FirstToken(n Node) (token.Token, bool) {
	for _, el := range n.Elements() {
		if el.Token != nil {
			return *el.Token, true
		}
		if el.Node != nil {
			if tk, ok := FirstToken(el.Node); ok {
				return tk, true
			}
		}
	}
	return token.Token{}, false
}

// LastToken returns the last terminal token under n.
func LastToken(n Node) (token.Token, bool) {
	els := n.Elements()
	for i := len(els) - 1; i >= 0; i-- {
		if els[i].Token != nil {
			return *els[i].Token, true
		}
		if els[i].Node != nil {
			if tk, ok := LastToken(els[i].Node); ok {
				return tk, true
			}
		}
	}
	return token.Token{}, false
}

// Walk visits n and every node beneath it, depth first. The visit
// function may return false to prune a subtree.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, el := range n.Elements() {
		if el.Node != nil {
			Walk(el.Node, visit)
		}
	}
}
