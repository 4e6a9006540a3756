package syntax

import (
	"shard/internal/token"
)

// DeclarationKind tags every declaration node for modifier validation and
// dispatch without type switching.
type DeclarationKind uint8

const (
	DeclNamespace DeclarationKind = iota
	DeclClass
	DeclStruct
	DeclInterface
	DeclEnum
	DeclDelegate
	DeclField
	DeclEventField
	DeclEvent
	DeclProperty
	DeclIndexer
	DeclMethod
	DeclConstructor
	DeclDestructor
	DeclOperator
	DeclConversionOperator
	DeclEnumMember
	DeclIncomplete
)

var declKindNames = [...]string{
	"namespace", "class", "struct", "interface", "enum", "delegate",
	"field", "event field", "event", "property", "indexer", "method",
	"constructor", "destructor", "operator", "conversion operator",
	"enum member", "incomplete member",
}

func (k DeclarationKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "unknown"
}

// ModifierEnv captures the context a declaration's modifiers are checked
// against: the enclosing scope and the const marker for fields.
type ModifierEnv struct {
	// InNamespace is set for declarations whose enclosing scope is a
	// namespace or the compilation unit itself.
	InNamespace bool
	// InInterface is set for members declared inside an interface.
	InInterface bool
	// IsConst is set while validating a constant field.
	IsConst bool
}

var accessModifiers = []token.Kind{
	token.KwPublic, token.KwProtected, token.KwInternal, token.KwPrivate,
}

func contains(set []token.Kind, k token.Kind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}

// IsModifierValid reports whether mod may appear on a declaration of the
// given kind in the given context. Duplicate detection is the caller's
// concern; this checks set membership only.
func IsModifierValid(kind DeclarationKind, env ModifierEnv, mod token.Kind) bool {
	// 'new' marks an intentional name conflict and is valid on any member
	// not declared directly in a namespace.
	if mod == token.KwNew {
		return kind != DeclNamespace && !env.InNamespace
	}

	// interface members share one reduced set regardless of member kind
	if env.InInterface && kind != DeclInterface {
		switch mod {
		case token.KwPublic, token.KwProtected, token.KwInternal, token.KwPrivate, token.KwUnsafe:
			return true
		default:
			return false
		}
	}

	switch kind {
	case DeclNamespace:
		return false

	case DeclClass:
		switch mod {
		case token.KwAbstract, token.KwSealed, token.KwStatic, token.KwUnsafe:
			return true
		}
		return contains(accessModifiers, mod)

	case DeclStruct, DeclInterface, DeclEnum, DeclDelegate:
		if mod == token.KwUnsafe {
			return true
		}
		return contains(accessModifiers, mod)

	case DeclField:
		switch mod {
		case token.KwStatic, token.KwReadonly, token.KwVolatile:
			// const fields already have storage semantics
			return !env.IsConst
		case token.KwUnsafe:
			return true
		}
		return contains(accessModifiers, mod)

	case DeclMethod, DeclProperty, DeclIndexer, DeclEvent, DeclEventField:
		switch mod {
		case token.KwStatic, token.KwVirtual, token.KwOverride, token.KwAbstract,
			token.KwSealed, token.KwExtern, token.KwUnsafe:
			return true
		}
		return contains(accessModifiers, mod)

	case DeclConstructor:
		switch mod {
		case token.KwStatic, token.KwExtern, token.KwUnsafe:
			return true
		}
		return contains(accessModifiers, mod)

	case DeclDestructor:
		return mod == token.KwExtern

	case DeclOperator, DeclConversionOperator:
		switch mod {
		case token.KwPublic, token.KwStatic, token.KwExtern, token.KwUnsafe:
			return true
		}
		return false

	case DeclEnumMember:
		return false

	case DeclIncomplete:
		// incomplete members already reported; don't pile on
		return true
	}
	return false
}
