// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// fetchCell is a narrow mutable-int abstraction used for fetch_length: a
// counter shared between a parent value and the store fragments
// fetchValue splits out of it. fetchValue only hands the cell on to those
// fragments; it does not read or grow it, so fetch widths come solely from
// each FetchRequest's WordCount. Wrapping it behind a named type (rather
// than a bare *int) is the same "mutable capability lives in a named
// type" discipline kont applies to Affine/Suspension.
type fetchCell struct {
	n int
}

func newFetchCell(initial int) *fetchCell { return &fetchCell{n: initial} }

func (c *fetchCell) get() int { return c.n }

func (c *fetchCell) set(n int) { c.n = n }

// grow doubles the cell's current width and returns the new value. No
// code in this package calls it.
func (c *fetchCell) grow() int {
	if c.n <= 0 {
		c.n = 1
	} else {
		c.n *= 2
	}
	return c.n
}

// Value is one occurrence of a machine value: a sequence, the depth it
// was created at, a shared fetch-width cell, and a compressed-since
// watermark. Values never alias — each occurrence owns its own Value even
// when two sequences happen to be structurally equal, because fetchLength
// is per-occurrence.
type Value struct {
	Seq             *MeasuredSeq
	Depth           int
	FetchLength     *fetchCell
	CompressedSince int
}

// uncompressed is the CompressedSince sentinel for a value that has never
// been path-compressed: epoch counters (RecordState.F) start at 0, so a
// plain zero value here would be indistinguishable from "compressed as of
// epoch 0" on a fresh RecordState and pathCompressValue would wrongly
// no-op on its very first call.
const uncompressed = -1

// NewValue builds a fresh, uncompressed Value at depth d with its own
// fetch-width cell.
func NewValue(seq *MeasuredSeq, depth int) *Value {
	return &Value{Seq: seq, Depth: depth, FetchLength: newFetchCell(1), CompressedSince: uncompressed}
}

// liftValue promotes v to depth+1: its whole sequence is replaced by a
// single Reference back to the parent value. Environment slots
// reference E i, the kontinuation references K.
func liftValue(v *Value, src RefSource, valuesCount int) *Value {
	ref := Reference{Src: src, Offset: 0, ValuesCount: valuesCount}
	seq := singleSeq(leafNode(RefElem{R: ref}, referenceMeasure(valuesCount)))
	return &Value{Seq: seq, Depth: v.Depth + 1, FetchLength: newFetchCell(1), CompressedSince: uncompressed}
}
