// Package dnagen produces synthetic DNA sequences for tests, benchmarks and
// demos of the alignment engine.
//
// A Generator walks a first-order Markov chain over the alphabet ACGT: the
// first nucleotide is drawn from Model.Init, every following one from the row
// of Model.Next selected by its predecessor. A Mutator derives a related
// sequence by deleting, inserting or replacing nucleotides at a given rate,
// which makes pairs whose alignments are long and mostly diagonal.
//
// Both are deterministic for a given seed; seed 0 selects a fixed default.
package dnagen
