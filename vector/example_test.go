package vector_test

import (
	"fmt"

	"github.com/nonopt-go/nonopt/vector"
)

// ExampleLinearCombination shows the x_k + alpha*d update every bundle step
// and line search in this package performs: a new point as an affine
// combination of the current iterate and a direction.
func ExampleLinearCombination() {
	x := vector.New([]float64{3, -2})
	d := vector.New([]float64{1, 4})

	next, err := vector.LinearCombination(1, x, 0.5, d)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(next.Data())
	fmt.Println(next.NormInf())
	// Output:
	// [3.5 0]
	// 3.5
}
