// Package parser turns a token sequence into an ast.Tree.
//
// The parser is recursive descent with one token of lookahead and no
// backtracking. Binary operators go through a single precedence-climbing loop
// driven by op_table.go; assignment is the only right-associative level.
//
// Parsing is all-or-nothing: the first mismatch stops the parse and is
// returned as a *SyntaxError; no partial tree escapes.
package parser
