package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// ExampleMultiply runs full recursion with fork-join and aliased quadrants.
func ExampleMultiply() {
	a, _ := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]int{{5, 6}, {7, 8}})

	p := strassen.NewPolicy(
		strassen.WithFullRecursion(1),
		strassen.WithForkJoin(),
		strassen.WithAliasing(),
	)
	c, err := strassen.Multiply(a, b, p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExamplePresets lists the numbered strategies.
func ExamplePresets() {
	for _, p := range strassen.Presets() {
		fmt.Println(p.Code, p.Name)
	}
	// Output:
	// 0 ordinary
	// 1 ordinary + cache friendly
	// 2 strassen + cache friendly
	// 3 strassen + cache friendly + multithread
	// 4 strassen + cache friendly + multithread + keep strassen
	// 5 strassen + cache friendly + multithread + keep strassen + shadow copy
	// 6 strassen + multithread + keep strassen + shadow copy
}
