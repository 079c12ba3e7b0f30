// Package huffman builds binary Huffman codes and records every construction
// step for later playback.
//
// Build normalises the input weights (each clamped to a small floor first),
// creates one leaf per symbol, then repeatedly merges the two lowest-weight
// nodes until a single root remains. Ties are broken by insertion order: the
// node created first is taken first, so the same alphabet always produces the
// same tree and the same codes.
//
// The tree is stored as an arena (Tree.Nodes) indexed by node ID; children are
// referenced by ID, never by pointer. The arena is append-only, so a step that
// names a node ID can be replayed at any time with Tree.Subtree.
//
// Complexity:
//
//   - Time:   O(n log n) for n symbols (binary heap).
//   - Memory: O(n) (2n-1 arena nodes, 2n-1 steps).
package huffman
