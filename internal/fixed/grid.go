package fixed

import "github.com/agbru/decicalc/internal/digits"

// Mul returns a * b computed by the grid method.
//
// Every digit of a is crossed with every digit of b; each single-digit product
// comes from the multiplication table and is accumulated in a bucket keyed by
// the sum of the two powers of ten. A sweep from the lowest power upwards then
// keeps the low digit of each bucket and carries the rest into the next one.
func Mul(a, b Decimal) Decimal {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	ap, bp := a.DigitPowers(), b.DigitPowers()

	lowest := min(ap[len(ap)-1].Power+bp[len(bp)-1].Power, 0)
	highest := ap[0].Power + bp[0].Power
	buckets := make([]int, highest-lowest+1, highest-lowest+2)

	for _, x := range ap {
		for _, y := range bp {
			lo, hi := digits.Mul(x.Digit, y.Digit)
			buckets[x.Power+y.Power-lowest] += int(hi)*10 + int(lo)
		}
	}

	for i := 0; i < len(buckets); i++ {
		if buckets[i] <= digits.Max {
			continue
		}
		carry := buckets[i] / 10
		buckets[i] %= 10
		if i == len(buckets)-1 {
			buckets = append(buckets, 0)
			highest++
		}
		buckets[i+1] += carry
	}

	ds := make([]byte, len(buckets))
	for i, v := range buckets {
		ds[len(buckets)-1-i] = byte(v)
	}
	// lowest <= 0 keeps the point inside the digits.
	return normalize(ds, highest, a.neg != b.neg)
}
