package syntax

import (
	"shard/internal/token"
)

// Opt is an absent-or-present value. Used for optional tokens; optional
// nodes are plain pointers.
type Opt[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, present: true}
}

// None is the absent value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Present reports whether a value is held.
func (o Opt[T]) Present() bool { return o.present }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.value, o.present }

// MustGet returns the value; the zero value when absent.
func (o Opt[T]) MustGet() T { return o.value }

type listElements interface {
	listElements() []Element
}

// SeparatedList is an ordered element sequence interleaved with separator
// tokens. len(Separators) is len(Items)-1, or len(Items) when a trailing
// separator is present (enum members and similar).
type SeparatedList[T Node] struct {
	Items      []T
	Separators []token.Token
}

// Len returns the number of items.
func (l SeparatedList[T]) Len() int { return len(l.Items) }

// At returns the i-th item.
func (l SeparatedList[T]) At(i int) T { return l.Items[i] }

// listElements interleaves items and separators in source order.
func (l SeparatedList[T]) listElements() []Element {
	out := make([]Element, 0, len(l.Items)+len(l.Separators))
	for i := range l.Items {
		out = append(out, Element{Node: l.Items[i]})
		if i < len(l.Separators) {
			sep := l.Separators[i]
			out = append(out, Element{Token: &sep})
		}
	}
	// trailing separator
	for i := len(l.Items); i < len(l.Separators); i++ {
		sep := l.Separators[i]
		out = append(out, Element{Token: &sep})
	}
	return out
}

// WellFormed checks the separator-count relation.
func (l SeparatedList[T]) WellFormed() bool {
	if len(l.Items) == 0 {
		return len(l.Separators) == 0
	}
	return len(l.Separators) == len(l.Items)-1 || len(l.Separators) == len(l.Items)
}

// TokenList appends a plain token slice as elements (modifier runs).
type TokenList []token.Token

func (l TokenList) listElements() []Element {
	out := make([]Element, 0, len(l))
	for i := range l {
		t := l[i]
		out = append(out, Element{Token: &t})
	}
	return out
}
