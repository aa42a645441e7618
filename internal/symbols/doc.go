// Package symbols provides the scope stack the type checker threads through
// its walk. Visibility is forward from the point of declaration: a name is
// found only after Define has run for it.
package symbols
