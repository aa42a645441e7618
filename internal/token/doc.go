// Package token defines the closed set of lexical token kinds of the decaf language.
// Invariants:
//   - Token.Text is the exact lexeme taken from the source (string literals keep their quotes).
//   - Token.Span matches Text exactly (Start..End) and Token.Line is the 1-based line of Start.
//   - Whitespace and comments never reach the token stream.
//   - The stream always ends with exactly one EOF token.
package token
