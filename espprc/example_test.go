package espprc_test

import (
	"fmt"

	"github.com/katalvlaran/pricing/espprc"
	"github.com/katalvlaran/pricing/instance"
)

// ExampleSolve prices a single customer whose dual exceeds the round trip.
func ExampleSolve() {
	in, err := instance.FromDualsRows(
		[][]float64{{0, 5}, {5, 0}},
		[]float64{0, 13},
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	res, err := espprc.Solve(in, 1, 1, 100)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Printf("cost=%.1f route=%v length=%.0f improving=%t\n",
		res.Cost, res.Route, res.Length, res.Improving())
	// Output: cost=-3.0 route=[0 1 0] length=10 improving=true
}

// ExampleSolve_capacity shows a capacity that leaves only the empty route.
func ExampleSolve_capacity() {
	in, _ := instance.FromDualsRows(
		[][]float64{{0, 5}, {5, 0}},
		[]float64{0, 13},
	)

	res, _ := espprc.Solve(in, 1, 0, 100)
	fmt.Printf("cost=%.1f route=%v improving=%t\n", res.Cost, res.Route, res.Improving())
	// Output: cost=0.0 route=[0] improving=false
}

// ExampleEvaluate re-prices a route against an instance.
func ExampleEvaluate() {
	in, _ := instance.FromDualsRows(
		[][]float64{{0, 5}, {5, 0}},
		[]float64{0, 13},
	)

	cost, length, load, _ := espprc.Evaluate(in, []int{0, 1, 0}, 1)
	fmt.Println(cost, length, load)
	// Output: -3 10 [1]
}
