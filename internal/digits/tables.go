package digits

// Max is the largest decimal digit value.
const Max = 9

// pair is a table cell holding a result digit and the digit carried into
// (or borrowed from) the next position.
type pair struct {
	digit byte
	carry byte
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup Tables
// ─────────────────────────────────────────────────────────────────────────────

var (
	// addTable[a][b][c] is a+b+c split into a digit and a carry.
	addTable [10][10][2]pair
	// mulTable[a][b] is a*b split into a low digit and a high digit.
	mulTable [10][10]pair
	// incTable[d] is d+1; 9 wraps to 0 with a carry.
	incTable [10]pair
	// decTable[d] is d-1; 0 wraps to 9 with a borrow.
	decTable [10]pair
	// ninesTable[d] is 9-d.
	ninesTable [10]byte
	// charTable maps an ASCII byte to its digit value, or 0xFF.
	charTable [256]byte
)

func init() {
	for a := 0; a < 10; a++ {
		for b := 0; b < 10; b++ {
			for c := 0; c < 2; c++ {
				s := a + b + c
				addTable[a][b][c] = pair{digit: byte(s % 10), carry: byte(s / 10)}
			}
			p := a * b
			mulTable[a][b] = pair{digit: byte(p % 10), carry: byte(p / 10)}
		}
		incTable[a] = pair{digit: byte((a + 1) % 10), carry: byte((a + 1) / 10)}
		if a == 0 {
			decTable[a] = pair{digit: 9, carry: 1}
		} else {
			decTable[a] = pair{digit: byte(a - 1)}
		}
		ninesTable[a] = byte(9 - a)
	}
	for i := range charTable {
		charTable[i] = 0xFF
	}
	for d := 0; d < 10; d++ {
		charTable['0'+d] = byte(d)
	}
}

// Add returns the digit and carry of a+b+carry. carry must be 0 or 1.
func Add(a, b, carry byte) (digit, carryOut byte) {
	p := addTable[a][b][carry]
	return p.digit, p.carry
}

// Mul returns the low and high digits of a*b.
func Mul(a, b byte) (lo, hi byte) {
	p := mulTable[a][b]
	return p.digit, p.carry
}

// Inc returns d+1 and whether it carried out of the digit.
func Inc(d byte) (digit, carry byte) {
	p := incTable[d]
	return p.digit, p.carry
}

// Dec returns d-1 and whether it borrowed from the next digit.
func Dec(d byte) (digit, borrow byte) {
	p := decTable[d]
	return p.digit, p.carry
}

// Nines returns the nine's complement 9-d.
func Nines(d byte) byte {
	return ninesTable[d]
}

// Parse converts an ASCII character to its digit value.
func Parse(c byte) (byte, bool) {
	d := charTable[c]
	return d, d != 0xFF
}

// Char converts a digit value to its ASCII character.
func Char(d byte) byte {
	return "0123456789"[d]
}

// Valid reports whether d is a decimal digit value.
func Valid(d byte) bool {
	return d <= Max
}
