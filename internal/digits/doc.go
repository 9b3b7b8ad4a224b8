// Package digits provides the lookup tables behind all digit-level arithmetic
// in decicalc. Single-digit addition, multiplication, increment, decrement and
// nine's complement are answered by indexing fixed-size arrays, so the
// arithmetic packages never combine two digits with a native operator.
//
// The tables are filled once at package initialisation and are read-only
// afterwards; they are safe for concurrent use.
package digits
