package multiply_test

import (
	"context"
	"fmt"

	"github.com/agbru/decicalc/internal/multiply"
)

func ExampleDefaultFactory_Get() {
	m, err := multiply.NewDefaultFactory().Get("karatsuba")
	if err != nil {
		panic(err)
	}
	product, err := m.Multiply(context.Background(), nil, 0, "-1.25", "8", multiply.Options{})
	fmt.Println(product, err)
	// Output: -10 <nil>
}
