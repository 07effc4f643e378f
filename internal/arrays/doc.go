// Package arrays holds small in-memory routines over integer slices:
// the two-pointer family (three-sum, sorted squares, move-zeroes, reverse)
// and a hash-based two-sum.
//
// Every routine is synchronous and allocation-light. Routines that reorder
// their input say so in their doc comment; the rest work on private copies.
package arrays
