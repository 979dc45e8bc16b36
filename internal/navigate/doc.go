// Package navigate implements block-wise cursor navigation: given a
// document and a current line, it computes the line the cursor should land
// on when jumping to the next or previous block, where a block is a maximal
// run of non-blank lines.
//
// The package is pure: it reads the line view and the optional visible-line
// ranges passed to each call and returns a line index. Folded (hidden)
// regions are treated as opaque units that are walked past but never landed
// on, and a line containing only closing punctuation ("}", "});", ...) is
// considered part of the block above it rather than a block of its own.
package navigate
