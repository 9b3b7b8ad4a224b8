// Package dft implements the discrete Fourier transform over complexnum
// sequences and the convolution multiplication of decimal digit strings
// built on it.
//
// Transform and Inverse evaluate the transform directly from its definition
// in O(N²). Convolution products are rounded from these values, so the
// package provides no FFT variant.
package dft
