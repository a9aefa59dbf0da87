// Package solve implements the Solv-o-matic constraint engine: a table of
// partitions denoting a cross product of unions of tuples, a lattice-valued
// constraint evaluation framework that folds over that table without
// enumerating it, and a solver loop that alternates pruning with speculative
// partition merges until a single partition — the solution set — remains.
//
// The engine is generic over the caller's variable identifier type and value
// type; both need only be hashable and totally ordered (satisfied by any
// cmp.Ordered type, since all such types are already comparable). Arithmetic
// lattices (Sum, Product) take a toInt function that converts each (possibly
// mapped) value to the integer it contributes.
package solve
