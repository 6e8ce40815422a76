// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import "testing"

// buildMemoFixture builds an outer (depth 0) RecordState holding a single
// materialized int value, the enclosing frame a recursive descent climbs
// back to when fetching.
func buildMemoFixture(n int64) *RecordState {
	outerState := &State{C: 0, E: []*Value{NewValue(FromInt(n), 0)}, K: NewValue(EmptySeq, 0), D: 0, Last: nil}
	return newRecordState(outerState)
}

func childStateOver(outerRS *RecordState, n int64) *State {
	return &State{C: 1, E: []*Value{NewValue(FromInt(n), 1)}, K: NewValue(EmptySeq, 1), D: 1, Last: outerRS}
}

// S1/S2 shape: entering a fresh memo root lifts the caller one depth
// deeper, wrapping its environment as references back to the caller's own
// level (spec.md §4.F).
func TestEnterNewMemoLiftsFreshRoot(t *testing.T) {
	degrees := &degreeTable{}
	outerRS := buildMemoFixture(42)
	root := newRootMemo()

	lifted, rs, err := enterNewMemo(childStateOver(outerRS, 42), root, degrees)
	if err != nil {
		t.Fatalf("enterNewMemo: %v", err)
	}
	if lifted.D != 2 {
		t.Fatalf("expected lifted state at depth 2, got %d", lifted.D)
	}
	if rs.M.Last != outerRS {
		t.Fatal("expected the recording RecordState to chain back to the outer frame")
	}
	if !root.isBlackHole() {
		t.Fatal("expected the root to flip to BlackHole once entered")
	}
	if _, ok := rs.R.(Evaluating); !ok {
		t.Fatalf("expected rs.R to be Evaluating, got %T", rs.R)
	}
}

// Re-entering an already-BlackHole root (no completion in between) is a
// structural violation, spec.md §7.1.
func TestEnterNewMemoRejectsBlackHoleReentry(t *testing.T) {
	degrees := &degreeTable{}
	outerRS := buildMemoFixture(7)
	root := newRootMemo()

	if _, _, err := enterNewMemo(childStateOver(outerRS, 7), root, degrees); err != nil {
		t.Fatalf("first enterNewMemo: %v", err)
	}
	if _, _, err := enterNewMemo(childStateOver(outerRS, 7), root, degrees); err == nil {
		t.Fatal("expected a second entry into the same BlackHole root to fail")
	}
}

// S5 shape, exercised through registerNeed rather than fetchValue directly:
// a recording that needs its own environment's value climbs exactly one
// level to the enclosing frame, where the value is already materialized.
func TestRegisterNeedClimbsToEnclosingFrame(t *testing.T) {
	degrees := &degreeTable{}
	outerRS := buildMemoFixture(99)
	root := newRootMemo()

	_, rs, err := enterNewMemo(childStateOver(outerRS, 99), root, degrees)
	if err != nil {
		t.Fatalf("enterNewMemo: %v", err)
	}

	next, err := registerNeed(rs, FetchRequest{Src: EnvSource{I: 0}, Offset: 0, WordCount: 1}, degrees)
	if err != nil {
		t.Fatalf("registerNeed: %v", err)
	}
	if next.D != 2 {
		t.Fatalf("expected registerNeed to hand back a depth-2 state, got %d", next.D)
	}
	if !root.isNeed() {
		t.Fatal("expected the root to have transitioned to Need")
	}
}

// S3/S6 shape: completing a memo node's recording (the CompleteDone
// protocol, reproduced here at the RecordState level) installs a Done skip
// that a later entry takes without erroring, and without re-lifting past
// the original recording depth.
func TestCompletedMemoNodeSkipsWithoutReentry(t *testing.T) {
	degrees := &degreeTable{}
	outerRS := buildMemoFixture(3)
	root := newRootMemo()

	_, rs, err := enterNewMemo(childStateOver(outerRS, 3), root, degrees)
	if err != nil {
		t.Fatalf("enterNewMemo: %v", err)
	}
	evalCtx, ok := rs.R.(Evaluating)
	if !ok {
		t.Fatalf("expected Evaluating, got %T", rs.R)
	}
	evalCtx.Node.toDone(composeSkip(defaultProgress(degrees), degrees))
	if !root.isDone() {
		t.Fatal("expected the root to be Done")
	}

	collapsed, err := unshiftAll(rs, degrees)
	if err != nil {
		t.Fatalf("unshiftAll: %v", err)
	}
	if collapsed.D != 0 {
		t.Fatalf("expected completion to collapse back to depth 0, got %d", collapsed.D)
	}

	// A later entry at the same pc, against the same (now Done) root, must
	// take the skip branch rather than re-lifting or erroring.
	secondOuterRS := buildMemoFixture(3)
	skipped, _, err := enterNewMemo(childStateOver(secondOuterRS, 3), root, degrees)
	if err != nil {
		t.Fatalf("enterNewMemo on a Done root: %v", err)
	}
	if skipped.D != 1 {
		t.Fatalf("expected the skip path to leave depth unchanged at 1, got %d", skipped.D)
	}
}

// P7: the same fixture entered through two independent RecordState chains
// (standing in for two separate evaluator runs) reaches the same depth and
// Evaluating/BlackHole transition, regardless of which run observes it.
func TestMemoEntryDeterministicAcrossRuns(t *testing.T) {
	degrees := &degreeTable{}

	run := func(n int64) (int, bool) {
		outerRS := buildMemoFixture(n)
		root := newRootMemo()
		lifted, _, err := enterNewMemo(childStateOver(outerRS, n), root, degrees)
		if err != nil {
			t.Fatalf("enterNewMemo: %v", err)
		}
		return lifted.D, root.isBlackHole()
	}

	d1, bh1 := run(5)
	d2, bh2 := run(5)
	if d1 != d2 || bh1 != bh2 {
		t.Fatalf("expected deterministic entry shape, got (%d,%v) and (%d,%v)", d1, bh1, d2, bh2)
	}
}
