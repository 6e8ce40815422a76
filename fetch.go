// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// resolveSource resolves a RefSource against the values visible at rs's
// own recording depth: environment slots and the kontinuation come from
// rs.M, store slots from rs.S.
func resolveSource(rs *RecordState, src RefSource) (*Value, error) {
	switch v := src.(type) {
	case EnvSource:
		if v.I < 0 || v.I >= len(rs.M.E) {
			return nil, errorf(ErrDepthMismatch, "resolveSource: env slot %d out of range", v.I)
		}
		return rs.M.E[v.I], nil
	case StoreSource:
		return rs.S.Get(v.I)
	case KSource:
		return rs.M.K, nil
	default:
		return nil, errorf(ErrUnknownWordTag, "resolveSource: unknown RefSource %T", src)
	}
}

// pathCompressValue is idempotent per fetch epoch: a value whose
// compressedSince already matches rs.F is returned unchanged. Otherwise
// every reference in value.Seq is resolved against the enclosing
// RecordState (rs.M.Last) — the depth-d-1 level a depth-d reference
// always points into, per invariant 2 — and inlined.
func pathCompressValue(value *Value, rs *RecordState, degrees *degreeTable) error {
	if value.CompressedSince == rs.F {
		return nil
	}
	parent := rs.M.Last
	if parent == nil {
		value.CompressedSince = rs.F
		return nil
	}
	newSeq, err := compressSeq(value.Seq, parent, degrees)
	if err != nil {
		return err
	}
	value.Seq = newSeq
	value.CompressedSince = rs.F
	return nil
}

// compressSeq walks seq, splitting at the first element whose measure has
// no Full info (the first Reference), resolving it against base, and
// recursing on the remainder. SplitSeq places that element — the pivot —
// wholly into its prefix result, so the pivot is recovered from the tail
// of prefix (via BackSeq), not the head of suffix.
func compressSeq(seq *MeasuredSeq, base *RecordState, degrees *degreeTable) (*MeasuredSeq, error) {
	if SeqMeasure(seq).Full != nil {
		return seq, nil
	}
	prefix, suffix := SplitSeq(func(m Measure) bool { return m.Full == nil }, seq)
	rest, e, ok := BackSeq(prefix)
	if !ok {
		return seq, nil
	}
	refElem, isRef := e.(RefElem)
	if !isRef {
		return nil, errorf(ErrUnknownWordTag, "compressSeq: expected a Reference, got %T", e)
	}
	resolved, err := resolveReference(refElem.R, base, degrees)
	if err != nil {
		return nil, err
	}
	suffixCompressed, err := compressSeq(suffix, base, degrees)
	if err != nil {
		return nil, err
	}
	return AppendSeq(AppendSeq(rest, resolved), suffixCompressed), nil
}

// resolveReference substitutes in the sub-range ref names, via pop_n
// twice: first to skip ref.Offset values, then to keep ref.ValuesCount.
func resolveReference(ref Reference, base *RecordState, degrees *degreeTable) (*MeasuredSeq, error) {
	srcValue, err := resolveSource(base, ref.Src)
	if err != nil {
		return nil, err
	}
	_, tail, err := PopN(srcValue.Seq, ref.Offset, degrees)
	if err != nil {
		return nil, err
	}
	kept, _, err := PopN(tail, ref.ValuesCount, degrees)
	if err != nil {
		return nil, err
	}
	return kept, nil
}

// fetchValue moves a prefix of the value at request.Src from depth rs.M.D
// to depth rs.M.D+1, per spec.md §4.G. The bool result reports whether
// the request could be satisfied at the requested width; false is a
// normal fetch miss, not an error (spec.md §7.2).
func fetchValue(rs *RecordState, request FetchRequest, degrees *degreeTable) (FetchResult, bool, error) {
	value, err := resolveSource(rs, request.Src)
	if err != nil {
		return FetchResult{}, false, err
	}
	if value.Depth != rs.M.D {
		return FetchResult{}, false, errorf(ErrDepthMismatch, "fetch_value: value depth %d != record depth %d", value.Depth, rs.M.D)
	}
	if err := pathCompressValue(value, rs, degrees); err != nil {
		return FetchResult{}, false, err
	}

	x, y, err := PopN(value.Seq, request.Offset, degrees)
	if err != nil {
		return FetchResult{}, false, err
	}

	fetched, residue := SplitSeq(func(m Measure) bool {
		return m.Full != nil && m.Full.Length >= request.WordCount
	}, y)

	fm := SeqMeasure(fetched)
	residueNonEmpty := residue.kind != ftKindEmpty
	if fm.Full == nil || (residueNonEmpty && fm.Full.Length != request.WordCount) {
		return FetchResult{}, false, nil
	}

	// An empty prefix/residue contributes nothing and is left out of the
	// rewritten sequence entirely, rather than stored as a reference to
	// zero values.
	newSeq := fetched
	if x.kind != ftKindEmpty {
		transformedX, err := AddToStore(rs, x, value.FetchLength, degrees)
		if err != nil {
			return FetchResult{}, false, err
		}
		newSeq = AppendSeq(transformedX, newSeq)
	}
	if residueNonEmpty {
		transformedRest, err := AddToStore(rs, residue, value.FetchLength, degrees)
		if err != nil {
			return FetchResult{}, false, err
		}
		newSeq = AppendSeq(newSeq, transformedRest)
	}
	value.Seq = newSeq
	value.Depth = rs.M.D + 1
	value.CompressedSince = rs.F + 1
	rs.F++

	return FetchResult{
		FetchedHash: fm.Full.Hash,
		HavePrefix:  x.kind == ftKindEmpty,
		HaveSuffix:  residue.kind == ftKindEmpty,
	}, true, nil
}

// unshiftValue demotes value from depth d+1 back to d. Two passes resolve
// the two kinds of reference a lifted value can still carry: first
// pathCompressValue against rs.M.Last, for a value no fetch ever touched
// and which still holds its original lift reference; then compressSeq
// against rs itself, for the StoreSource references later fetchValue
// calls (at this same depth) left behind in the value. fetchLength resets
// to a fresh cell, compressedSince resets to "never compressed" for the
// value's new depth.
func unshiftValue(value *Value, rs *RecordState, degrees *degreeTable) (*Value, error) {
	if err := pathCompressValue(value, rs, degrees); err != nil {
		return nil, err
	}
	newSeq, err := compressSeq(value.Seq, rs, degrees)
	if err != nil {
		return nil, err
	}
	return &Value{Seq: newSeq, Depth: value.Depth - 1, FetchLength: newFetchCell(1), CompressedSince: uncompressed}, nil
}

// unshiftAll collapses rs's recorded inner state into its parent: every
// environment value and the kontinuation are unshifted, the parent's C
// passes through unchanged (it is an opaque PC), and rs is released back
// to its pool.
func unshiftAll(rs *RecordState, degrees *degreeTable) (*State, error) {
	parent := rs.M.Last
	if parent == nil {
		return nil, errorf(ErrDepthMismatch, "unshift_all: no enclosing record state at depth %d", rs.M.D)
	}
	newE := make([]*Value, len(rs.M.E))
	for i, v := range rs.M.E {
		nv, err := unshiftValue(v, rs, degrees)
		if err != nil {
			return nil, err
		}
		newE[i] = nv
	}
	newK, err := unshiftValue(rs.M.K, rs, degrees)
	if err != nil {
		return nil, err
	}
	parent.M.E = newE
	parent.M.K = newK
	releaseRecordState(rs)
	return parent.M, nil
}
