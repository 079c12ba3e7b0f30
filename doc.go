// Package infotrace is a set of small, deterministic, step-traced engines for
// teaching information theory and graph search.
//
// Every engine computes its full result up front and returns the ordered
// list of intermediate steps alongside it, so a caller can replay the run
// one step at a time (see trace.Cursor).
//
//	alphabet/  symbols, probabilities, code tables, encode/decode, metrics
//	huffman/   optimal prefix codes by repeated merging of the two lightest nodes
//	fano/      Shannon-Fano codes by recursive balanced splitting
//	sfe/       Shannon-Fano-Elias codes from cumulative-interval midpoints
//	lz/        sliding-window dictionary compression into (offset, length, char)
//	hamming/   Hamming(7,4) encoding with single-error correction
//	graph/     small directed graphs, fixtures and reachability
//	hamilton/  Hamilton cycle enumeration, path validation and graph stats
//	catalog/   static complexity and trade-off facts per algorithm
//	bench/     timing harness over generated alphabets
//
// Quick example: for the dyadic alphabet A=.5 B=.25 C=.125 D=.125 all three
// prefix coders reach an average length equal to the entropy, 1.75 bits.
// Shannon-Fano-Elias assigns
//
//	A → 0
//	B → 10
//	C → 110
//	D → 111
//
// The cmd/infotrace command prints any of these traces from the shell.
//
//	go install github.com/katalvlaran/infotrace/cmd/infotrace@latest
package infotrace
