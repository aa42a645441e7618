// Package fuzztests holds fuzz harnesses that push arbitrary bytes through
// the decaf front end (source, lexer, parser, checker) and fail on panics,
// hangs or malformed trees.
package fuzztests
