// Package triangle_test provides examples demonstrating how to build and
// solve a triangle network. Each example is runnable via
// "go test -run Example", showing both code and expected output.
package triangle_test

import (
	"fmt"

	"github.com/locnkn204/geomkb/triangle"
)

// ExampleNewTriangle_rightTriangle feeds the three sides of a 3-4-5
// right triangle and reads back the derived angles and area.
func ExampleNewTriangle_rightTriangle() {
	n := triangle.NewTriangle()

	_ = n.SetInput("a", 3)
	_ = n.SetInput("b", 4)
	_ = n.SetInput("c", 5)

	results := n.GetResults()
	fmt.Printf("C=%.0f area=%.0f\n", results["C"], results["area"])
	// Output: C=90 area=6
}

// ExampleNewEquilateralTriangle_fromPerimeter feeds the perimeter and
// three equal angles of an equilateral triangle and reads back the side
// length.
func ExampleNewEquilateralTriangle_fromPerimeter() {
	n := triangle.NewEquilateralTriangle()

	_ = n.SetInput("A", 60)
	_ = n.SetInput("B", 60)
	_ = n.SetInput("C", 60)
	_ = n.SetInput("perimeter", 9)

	results := n.GetResults()
	fmt.Printf("a=%.0f\n", results["a"])
	// Output: a=3
}
