package bytecode

import "github.com/funvibe/nyxc/internal/value"

// Region is a contiguous segment that owns a code stream, a constants
// pool, and a parallel line-number stream. Invariant: len(Code) ==
// len(Lines) after every append. Code slots are signed 64-bit integers;
// an opcode value and a constant-pool index both fit in the same slot
// width, so the stream mixes them positionally with decoding driven
// entirely by the opcode alphabet.
type Region struct {
	Code      []int64
	Constants []value.Value
	Lines     []int

	// placeholder marks pool indices created by EmitPlaceholder. InternConstant
	// must never dedup a new constant onto one of these: a placeholder's
	// value is a meaningless sentinel until PatchConstant overwrites it, so
	// matching it by value would alias an unrelated back-patch target.
	placeholder map[int]bool
}

// NewRegion returns an empty region, ready to grow monotonically.
func NewRegion() *Region {
	return &Region{}
}

// Len returns the current code-stream length.
func (r *Region) Len() int {
	return len(r.Code)
}

// writeSlot appends a single code slot, recording the line it was emitted
// on. Every mutation of Code funnels through here so the len(Code) ==
// len(Lines) invariant can never be broken by a partial write.
func (r *Region) writeSlot(slot int64, line int) {
	r.Code = append(r.Code, slot)
	r.Lines = append(r.Lines, line)
}

// EmitOp appends an opcode to the code stream.
func (r *Region) EmitOp(op Op, line int) {
	r.writeSlot(int64(op), line)
}

// InternConstant looks up v in the constants pool by value and reuses its
// index if found; otherwise it appends v and writes the new index into the
// code stream. This is the dedup-by-value cache used for literals, names,
// and types, distinct from EmitPlaceholder below.
func (r *Region) InternConstant(v value.Value, line int) int {
	for i, existing := range r.Constants {
		if r.placeholder[i] {
			continue
		}
		if existing.Equal(v) {
			r.writeSlot(int64(i), line)
			return i
		}
	}
	return r.appendConstant(v, line)
}

// EmitPlaceholder always appends a fresh constants-pool entry — never
// deduplicated — because a placeholder's value is meaningless until a
// later PatchConstant overwrites it; reusing an existing slot would alias
// an unrelated back-patch target. The index is also excluded from future
// InternConstant dedup lookups, including after it is patched.
func (r *Region) EmitPlaceholder(v value.Value, line int) int {
	index := r.appendConstant(v, line)
	if r.placeholder == nil {
		r.placeholder = make(map[int]bool)
	}
	r.placeholder[index] = true
	return index
}

func (r *Region) appendConstant(v value.Value, line int) int {
	r.Constants = append(r.Constants, v)
	index := len(r.Constants) - 1
	r.writeSlot(int64(index), line)
	return index
}

// PatchConstant overwrites a previously emitted pool entry in place. It
// never grows or shrinks any stream.
func (r *Region) PatchConstant(index int, v value.Value) {
	if index < 0 || index >= len(r.Constants) {
		panic("bytecode: patch index out of range")
	}
	r.Constants[index] = v
}
