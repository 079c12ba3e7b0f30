// Package trace defines the action tags shared by all step records and a
// restartable cursor for replaying a precomputed step sequence.
//
// Engines compute every step up front and return them as a slice; a Cursor
// only moves an index over that slice. Pacing (auto-advance, pause) is the
// caller's business, so nothing here sleeps or spawns goroutines.
package trace

// Action classifies what a single step did.
type Action string

// Action tags emitted by the engines.
const (
	Initialize Action = "initialize" // huffman: leaf created
	Combine    Action = "combine"    // huffman: two lowest nodes merged
	Split      Action = "split"      // fano: group divided
	Assign     Action = "assign"     // fano: singleton receives its code
	Encode     Action = "encode"     // sfe: symbol interval encoded
	Input      Action = "input"      // hamming: data bits echoed
	Parity     Action = "parity"     // hamming: one parity bit computed
	Complete   Action = "complete"   // final result available
	Received   Action = "received"   // hamming: codeword echoed
	Check      Action = "check"      // hamming: one parity check evaluated
	Valid      Action = "valid"      // hamming: no error detected
	ErrorFound Action = "error_found"
	Corrected  Action = "corrected"
	Match      Action = "match"     // lz: one token emitted
	Visit      Action = "visit"     // hamilton: node pushed on the path
	Backtrack  Action = "backtrack" // hamilton: node popped from the path
	Cycle      Action = "cycle"     // hamilton: cycle recorded
)

// String returns the tag text.
func (a Action) String() string { return string(a) }

// Cursor walks a finite step sequence. The zero value is not usable; use NewCursor.
type Cursor[S any] struct {
	steps []S
	pos   int
}

// NewCursor positions a cursor on the first step of steps.
// The slice is not copied; engines never mutate a returned step slice.
func NewCursor[S any](steps []S) *Cursor[S] {
	return &Cursor[S]{steps: steps}
}

// Len returns the number of steps.
func (c *Cursor[S]) Len() int { return len(c.steps) }

// Index returns the zero-based position of the current step.
func (c *Cursor[S]) Index() int { return c.pos }

// Current returns the step under the cursor; ok is false for an empty sequence.
func (c *Cursor[S]) Current() (step S, ok bool) {
	if len(c.steps) == 0 {
		return step, false
	}

	return c.steps[c.pos], true
}

// Next advances one step. It returns false, without moving, on the last step.
func (c *Cursor[S]) Next() bool {
	if c.pos+1 >= len(c.steps) {
		return false
	}
	c.pos++

	return true
}

// Prev moves back one step. It returns false, without moving, on the first step.
func (c *Cursor[S]) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--

	return true
}

// Seek jumps to index i, clamped into [0, Len()-1].
func (c *Cursor[S]) Seek(i int) {
	switch {
	case len(c.steps) == 0 || i < 0:
		c.pos = 0
	case i >= len(c.steps):
		c.pos = len(c.steps) - 1
	default:
		c.pos = i
	}
}

// Reset rewinds to the first step.
func (c *Cursor[S]) Reset() { c.pos = 0 }

// Done reports whether the cursor sits on the last step (or the sequence is empty).
func (c *Cursor[S]) Done() bool { return c.pos >= len(c.steps)-1 }
