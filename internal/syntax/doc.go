// Package syntax defines the lossless concrete syntax tree for the
// Shard front-end.
//
// Every node exposes its immediate children, tokens included, through
// Elements; Tokens and Text walk that structure to recover the exact
// source slice a node covers. Nodes are plain immutable structs; absent
// children are nil pointers (nodes) or Opt values (tokens).
//
// SeparatedList models comma-interleaved sequences with the invariant
// len(Separators) == len(Items)-1 or len(Items) (trailing separator).
//
// DeclarationKind tags declaration nodes and drives IsModifierValid, the
// table the parser checks collected modifier tokens against.
package syntax
