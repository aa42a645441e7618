// Package sema type-checks a parsed decaf program.
//
// Check walks the syntax tree once, top-down, with an explicit scope stack
// owned by the pass. Type errors never stop the walk: each one is reported
// and the offending expression is given the best type still known (often
// types.None) so that later, independent errors are found in the same run.
package sema
