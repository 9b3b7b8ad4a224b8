// Package bignum implements a signed arbitrary-precision integer stored as a
// string of decimal digits. Every digit-level step goes through the lookup
// tables of package digits; subtraction is performed by ten's complement.
//
// Int values are immutable: every operation returns a new value and no two
// values share digit storage.
package bignum
