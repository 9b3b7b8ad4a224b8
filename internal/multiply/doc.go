// Package multiply exposes every multiplication algorithm of the module behind
// a single Multiplier interface so they can be run side by side and compared.
//
// Operands and products are decimal text ([-]digits[.digits]). Integer
// algorithms multiply the scaled mantissas and re-insert the decimal point;
// every product is rendered through fixed.Decimal so that results from
// different algorithms compare textually.
package multiply
