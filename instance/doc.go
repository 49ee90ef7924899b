// Package instance provides dense distance/reduced-cost oracles for the espprc
// pricing solver.
//
// An *Instance satisfies espprc.Oracle. It can be built from:
//
//   - explicit matrix.Matrix values (New),
//   - a distance matrix and dual values of a master problem (FromDuals),
//   - plain [][]float64 tables (NewFromRows, FromDualsRows),
//   - planar points and duals (FromPoints),
//   - a YAML instance file (Load, LoadFile),
//   - a seeded random generator for tests and benchmarks (Random).
//
// All constructors copy their inputs and validate shape and values up front:
// distances must be finite and non-negative, reduced costs finite off the
// diagonal. Errors are the sentinels in types.go.
package instance
