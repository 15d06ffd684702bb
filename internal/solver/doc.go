// Package solver computes joint replenishment policies using the indirect
// grouping heuristic: items are ranked by a/(D*v), share a common base
// cycle, and each replenishes at an integer multiple of it derived in
// closed form. The arithmetic core is pure and deterministic; validation
// happens before it runs and never inside it.
package solver
