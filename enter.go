// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// liftState lifts rs's own state to depth+1: every environment value and
// the kontinuation become a single Reference back to rs's level, per
// spec.md §4.F ("every value becomes a single Reference back to the
// parent: E slots to E i, K to K"). The lifted state's Last points back
// at rs, the RecordState tracking resolution at the depth it was lifted
// from.
func liftState(rs *RecordState) *State {
	state := rs.M
	newE := make([]*Value, len(state.E))
	for i, v := range state.E {
		newE[i] = liftValue(v, EnvSource{I: i}, SeqMeasure(v.Seq).Degree)
	}
	newK := liftValue(state.K, KSource{}, SeqMeasure(state.K.Seq).Degree)
	return &State{C: state.C, E: newE, K: newK, D: state.D + 1, Last: rs}
}

// enterNewMemo builds a fresh RecordState over state and walks the memo
// trie from root, per spec.md §4.F enter_new_memo. It always matches
// (matched=true): the CEK driver's two suspension points always enter
// wanting a concrete resolution (SPEC_FULL.md §4.F).
func enterNewMemo(state *State, root *MemoNode, degrees *degreeTable) (*State, *RecordState, error) {
	rs := newRecordState(state)
	newState, err := enterNewMemoAux(rs, root, true, degrees)
	if err != nil {
		return nil, nil, err
	}
	return newState, rs, nil
}

// enterNewMemoAux is the recursive memo-trie traversal of spec.md §4.F.
// matched=false is kept as an explicit probe capability (SPEC_FULL.md
// §4.F): a Root visited this way is returned unchanged rather than
// flipped to BlackHole. A Need node still runs fetchValue and, on a hit
// with no existing child, installs a BlackHole child, so a probe leaves
// the trie untouched only when it stops at a Root.
func enterNewMemoAux(rs *RecordState, node *MemoNode, matched bool, degrees *degreeTable) (*State, error) {
	switch {
	case node.isDone():
		return node.skip(rs)

	case node.isRoot():
		if !matched {
			return rs.M, nil
		}
		if err := node.toBlackHole(); err != nil {
			return nil, err
		}
		rs.R = Evaluating{Node: node}
		return liftState(rs), nil

	case node.isBlackHole():
		return nil, errorf(ErrBlackHoleReentry, "enter_new_memo: blackhole reentry at pc-depth %d", rs.M.D)

	case node.isNeed():
		fr, ok, err := fetchValue(rs, node.request, degrees)
		if err != nil {
			return nil, err
		}
		if ok {
			if child, exists := node.lookup[fr]; exists {
				return enterNewMemoAux(rs, child, true, degrees)
			}
			child := newRootMemo()
			if err := child.toBlackHole(); err != nil {
				return nil, err
			}
			node.lookup[fr] = child
			rs.R = Evaluating{Node: child}
			return node.prog.Enter(rs)
		}
		if matched {
			rs.R = Reentrance{Node: node}
			return node.prog.Enter(rs)
		}
		return rs.M, nil

	default:
		return nil, errorf(ErrUnknownWordTag, "enter_new_memo: unknown memo node kind")
	}
}

// composeSkip builds a Done node's skip closure from its Progress pair:
// λrs. exit(enter(rs)), per spec.md §4.F completion.
func composeSkip(prog Progress, degrees *degreeTable) func(rs *RecordState) (*State, error) {
	return func(rs *RecordState) (*State, error) {
		childState, err := prog.Enter(rs)
		if err != nil {
			return nil, err
		}
		childRS := newRecordState(childState)
		return prog.Exit(childRS)
	}
}

// defaultProgress builds the Enter/Exit closure pair every memo node
// resolution uses: enter lifts the caller's state a level deeper, exit
// collapses it back via unshift_all.
func defaultProgress(degrees *degreeTable) Progress {
	return Progress{
		Enter: func(callerRS *RecordState) (*State, error) { return liftState(callerRS), nil },
		Exit:  func(childRS *RecordState) (*State, error) { return unshiftAll(childRS, degrees) },
	}
}

// registerNeed implements spec.md §4.F "Suspension on unfetched fragment":
// the current Evaluating slot is frozen to Need{request, lookup, progress}
// and the machine tries to fetch the same request one level up. On
// success a fresh BlackHole child is installed for the observed
// FetchResult; on failure the entire recording exits via unshift_all.
func registerNeed(rs *RecordState, request FetchRequest, degrees *degreeTable) (*State, error) {
	evalCtx, ok := rs.R.(Evaluating)
	if !ok {
		return nil, errorf(ErrDepthMismatch, "register_need: record state is not Evaluating")
	}
	evalCtx.Node.toNeed(request, defaultProgress(degrees))
	return climbFetch(rs, evalCtx.Node, request, degrees)
}

// climbFetch tries request against the enclosing recording level: on a
// miss, or when there is no enclosing level at all, the whole recording
// abandons and exits via unshiftAll; on a hit, it installs (or reuses) the
// BlackHole child for the observed FetchResult and resumes there.
func climbFetch(rs *RecordState, need *MemoNode, request FetchRequest, degrees *degreeTable) (*State, error) {
	parent := rs.M.Last
	if parent == nil {
		return unshiftAll(rs, degrees)
	}

	fr, ok, err := fetchValue(parent, request, degrees)
	if err != nil {
		return nil, err
	}
	if !ok {
		return unshiftAll(rs, degrees)
	}

	if child, exists := need.lookup[fr]; exists {
		return enterNewMemoAux(rs, child, true, degrees)
	}
	child := newRootMemo()
	if err := child.toBlackHole(); err != nil {
		return nil, err
	}
	need.lookup[fr] = child
	rs.R = Evaluating{Node: child}
	return need.prog.Enter(rs)
}
