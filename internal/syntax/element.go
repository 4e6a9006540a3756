package syntax

import (
	"shard/internal/token"
)

// Node is a single syntax tree node. Nodes are structurally immutable
// once built and expose their immediate children, tokens included, in
// source order through Elements.
type Node interface {
	Kind() NodeKind
	Elements() []Element
}

// Element is one slot of a node: exactly one of Token and Node is set.
type Element struct {
	Token *token.Token
	Node  Node
}

// IsToken reports whether the element holds a token.
func (e Element) IsToken() bool { return e.Token != nil }

// Expr is a node usable in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node usable in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// TypeNode is a node usable in type position.
type TypeNode interface {
	Node
	typeNode()
}

// Member is a declaration usable inside a type or namespace body.
type Member interface {
	Node
	DeclKind() DeclarationKind
}

// build assembles an element slice from tokens, optional tokens, nodes,
// and separated lists, skipping absent parts.
func build(parts ...any) []Element {
	out := make([]Element, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case token.Token:
			t := v
			out = append(out, Element{Token: &t})
		case *token.Token:
			if v != nil {
				out = append(out, Element{Token: v})
			}
		case Opt[token.Token]:
			if t, ok := v.Get(); ok {
				out = append(out, Element{Token: &t})
			}
		case Node:
			if v != nil {
				out = append(out, Element{Node: v})
			}
		case listElements:
			out = append(out, v.listElements()...)
		case []Element:
			out = append(out, v...)
		case nil:
			// absent optional node
		default:
			panic("syntax: unsupported element part")
		}
	}
	return out
}

// ptr lifts a typed nil pointer into an absent Node, so optional concrete
// children can flow through build without wrapping a nil in an interface.
func ptr[T any, PT interface {
	*T
	Node
}](p PT) Node {
	if p == nil {
		return nil
	}
	return p
}

// nodes appends a homogeneous child slice as elements.
func nodes[T Node](items []T) []Element {
	out := make([]Element, 0, len(items))
	for _, it := range items {
		out = append(out, Element{Node: it})
	}
	return out
}

// Children returns the node's immediate sub-nodes, skipping tokens.
func Children(n Node) []Node {
	els := n.Elements()
	out := make([]Node, 0, len(els))
	for _, el := range els {
		if el.Node != nil {
			out = append(out, el.Node)
		}
	}
	return out
}
