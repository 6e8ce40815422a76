// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import "sync"

// PC is a dense, append-order step-table index.
type PC int

// State is the CEK triple plus the recording depth it lives at. C is
// opaque to the core: an index into the evaluator's step table.
type State struct {
	C    PC
	E    []*Value
	K    *Value
	D    int
	Last *RecordState
}

// RContext is the closed sum of record contexts a RecordState can be in:
// Building (under construction, no memo node yet committed to),
// Evaluating (walking a specific MemoNode), or Reentrance (the request at
// the current node could not be fetched at this depth, so matching must
// reuse the existing lookup). Encoded as a marker-method sum, the same
// defunctionalization idiom kont uses for Frame.
type RContext interface {
	rcontext() // unexported marker method
}

// Building marks a RecordState that has not yet resolved to a specific
// MemoNode.
type Building struct{}

func (Building) rcontext() {}

// Evaluating marks a RecordState walking MemoNode Node.
type Evaluating struct{ Node *MemoNode }

func (Evaluating) rcontext() {}

// Reentrance marks a RecordState re-entering MemoNode Node after an
// unfetchable request at the current depth.
type Reentrance struct{ Node *MemoNode }

func (Reentrance) rcontext() {}

// RecordState is allocated one per active recording depth, linked via
// State.Last rather than a separate stack slice: entering deeper
// recording pushes a new RecordState, unshiftAll pops it.
type RecordState struct {
	M *State
	S *Store
	F int
	R RContext
}

var recordStatePool = sync.Pool{New: func() any { return &RecordState{} }}

func acquireRecordState() *RecordState {
	rs := recordStatePool.Get().(*RecordState)
	return rs
}

func releaseRecordState(rs *RecordState) {
	if rs.S != nil {
		releaseStore(rs.S)
	}
	rs.M = nil
	rs.S = nil
	rs.F = 0
	rs.R = nil
	recordStatePool.Put(rs)
}

// newRecordState builds a fresh RecordState { m=state, s=empty, f=0,
// r=Building }, per spec.md §4.F enter_new_memo.
func newRecordState(state *State) *RecordState {
	rs := acquireRecordState()
	rs.M = state
	rs.S = acquireStore()
	rs.F = 0
	rs.R = Building{}
	return rs
}
