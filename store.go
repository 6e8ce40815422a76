// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import "sync"

// Store is an append-only dynamic array of Values, addressable by
// reference source S i. Each RecordState owns exactly one Store.
type Store struct {
	values []*Value
}

// storePool recycles the backing slices of Stores across recording
// scopes, generalizing kont/pool.go's acquire/release-with-field-zeroing
// pattern from frames to store slices.
var storePool = sync.Pool{New: func() any { return &Store{} }}

func acquireStore() *Store {
	return storePool.Get().(*Store)
}

func releaseStore(s *Store) {
	s.values = s.values[:0]
	storePool.Put(s)
}

// Get returns the value at store slot i.
func (s *Store) Get(i int) (*Value, error) {
	if i < 0 || i >= len(s.values) {
		return nil, errorf(ErrDepthMismatch, "store: slot %d out of range (len=%d)", i, len(s.values))
	}
	return s.values[i], nil
}

// Len reports the number of occupied store slots.
func (s *Store) Len() int { return len(s.values) }

// AddToStore appends seq as a new Value at rs's recording depth, sharing
// fetchLength with the caller rather than allocating a fresh cell, and
// returns a one-element sequence containing a Reference to the whole of
// that new value.
func AddToStore(rs *RecordState, seq *MeasuredSeq, fetchLength *fetchCell, degrees *degreeTable) (*MeasuredSeq, error) {
	if fetchLength == nil {
		fetchLength = newFetchCell(1)
	}
	v := &Value{Seq: seq, Depth: rs.M.D, FetchLength: fetchLength, CompressedSince: rs.F}
	i := len(rs.S.values)
	rs.S.values = append(rs.S.values, v)
	degree := SeqMeasure(seq).Degree
	ref := Reference{Src: StoreSource{I: i}, Offset: 0, ValuesCount: degree}
	return SingletonSeq(RefElem{R: ref}, degrees)
}
