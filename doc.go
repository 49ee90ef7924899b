// Package pricing is the column-generation pricing toolkit: it finds improving
// routes for a master linear program by solving the Elementary Shortest Path
// Problem with Resource Constraints (ESPPRC).
//
// 🚀 What is inside?
//
//	A single-threaded, allocation-conscious label-setting engine plus the pieces
//	a column-generation loop needs around it:
//		• Label DP engine: dominance pruning, lazy cascade invalidation
//		• Route reconstruction and multiple improving columns per call
//		• Dense oracles from matrices, duals, planar points or YAML files
//		• Prometheus metrics for every pricing run
//
// Under the hood, everything is organized under four subpackages:
//
//	espprc/   — Solve, route utilities, options and sentinel errors
//	instance/ — dense distance/reduced-cost oracles and instance files
//	stats/    — Prometheus collector implementing espprc.Observer
//	matrix/   — dense matrices and shape validators the instances are read from
//
// Quick ASCII example:
//
//	    0 ──5── 1
//	    depot   customer (dual 13)
//
//	represents the round trip 0→1→0 of length 10 and reduced cost 10−13 = −3,
//	a negative value: the route is an improving column.
//
//	go get github.com/katalvlaran/pricing
package pricing
