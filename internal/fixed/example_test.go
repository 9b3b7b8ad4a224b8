package fixed_test

import (
	"fmt"

	"github.com/agbru/decicalc/internal/fixed"
)

func ExampleMul() {
	a := fixed.MustParse("-1.5")
	b := fixed.MustParse("0.02")
	fmt.Println(fixed.Mul(a, b))
	// Output: -0.03
}

func ExampleFromDigits() {
	d, _ := fixed.FromDigits([]byte{1, 2, 3}, -2, false)
	fmt.Println(d)
	_, err := fixed.FromDigits([]byte{1, 2, 3}, 3, false)
	fmt.Println(err != nil)
	// Output:
	// 0.0123
	// true
}
