// Package ast holds the syntax tree produced by the parser.
//
// Every node lives in one arena owned by a Tree and is addressed by NodeID.
// A node is a Kind, an optional Value (names, literal text, operators) and an
// ordered list of children. Kinds with fixed slots (if/else, for clauses,
// optional initialisers and return types) keep NoNodeID in absent slots so
// child positions stay stable; the typed views in views.go decode them.
//
// The tree is strictly tree-shaped: every node except the root has exactly one
// parent, and nothing is shared between subtrees.
package ast
