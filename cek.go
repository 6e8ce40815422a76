// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// Step is a single-step transition function registered by the code
// generator via Evaluator.AddExp. It mutates state as needed and returns
// the next state, plus done=true when it has reached exec_done. Step
// functions interact with the memoizer only through the Evaluator methods
// at the two suspension points named in spec.md §4.H: EnterMemo before
// consuming the head of K, and RegisterNeed before matching a scrutinee.
type Step func(ev *Evaluator, state *State) (next *State, done bool, err error)

// Evaluator hosts one program's step table, degree table, and memo trie.
// It is construction-phase mutable (AddExp/SetConstructorDegree) until
// the first ExecCEK call implicitly Freezes it; further registration
// calls after that return ErrFrozen. Distinct Evaluator instances may run
// on different goroutines simultaneously; a single instance is not safe
// for concurrent use (spec.md §5, SPEC_FULL.md §5).
type Evaluator struct {
	exp     []Step
	degrees degreeTable
	memo    memoTable
	frozen  bool
	cfg     Config
}

// NewEvaluator builds an empty Evaluator ready for AddExp/
// SetConstructorDegree registration.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&ev.cfg)
	}
	return ev
}

// AddExp appends step to the exp table and returns its PC. PCs are dense,
// assigned in registration order.
func (ev *Evaluator) AddExp(step Step) (PC, error) {
	if ev.frozen {
		return 0, errorf(ErrFrozen, "add_exp: evaluator already frozen")
	}
	pc := PC(len(ev.exp))
	ev.exp = append(ev.exp, step)
	return pc, nil
}

// SetConstructorDegree registers the degree for ctag, which must equal
// the number of constructor tags already registered (ascending-tag
// order, per spec.md §6).
func (ev *Evaluator) SetConstructorDegree(ctag int32, degree int) error {
	if ev.frozen {
		return errorf(ErrFrozen, "set_constructor_degree: evaluator already frozen")
	}
	return ev.degrees.set(ctag, degree)
}

// Freeze forbids further AddExp/SetConstructorDegree calls. The first
// ExecCEK call invokes it implicitly.
func (ev *Evaluator) Freeze() { ev.frozen = true }

// Degrees exposes the evaluator's degree table for ABI conversions
// (abi.go) that need to compute a value's degree without going through a
// running State.
func (ev *Evaluator) Degrees() *degreeTable { return &ev.degrees }

// ExecCEK drives the CEK machine from pc with the given initial
// environment and kontinuation until a Step reports done, returning the
// final kontinuation's sequence. Structural assertion failures (BlackHole
// reentry, degree mismatches and the like) reach it as plain *StructuralError
// returns; in addition, any panic raised during the run (for example by a
// step function) is recovered here and returned as a *StructuralError.
func (ev *Evaluator) ExecCEK(pc PC, env []*Value, k *Value) (result *MeasuredSeq, err error) {
	ev.Freeze()
	defer func() {
		if r := recover(); r != nil {
			err = wrapPanic(r)
		}
	}()

	if int(pc) < 0 || int(pc) >= len(ev.exp) {
		return nil, errorf(ErrUnknownWordTag, "exec_cek: pc %d out of range", pc)
	}

	state := &State{C: pc, E: env, K: k, D: 0, Last: nil}
	for {
		step := ev.exp[state.C]
		next, done, stepErr := step(ev, state)
		if stepErr != nil {
			return nil, stepErr
		}
		if done {
			return next.K.Seq, nil
		}
		state = next
	}
}

// EnterMemo is the memo-trie entry point step functions call at a
// suspension point: it walks (or creates) the memo node rooted at pc and
// returns the resulting state. For a Done root that is the skip's result,
// state itself with its E and K rewritten; otherwise it is a lifted state
// one depth deeper.
func (ev *Evaluator) EnterMemo(state *State, pc PC) (*State, *RecordState, error) {
	root := ev.memo.rootFor(pc)
	if root.isDone() {
		ev.logSkip(pc, state.D)
	} else {
		ev.logEnter(pc, state.D)
	}
	return enterNewMemo(state, root, &ev.degrees)
}

// RegisterNeed is the other suspension point: rs's current Evaluating
// node is frozen to Need(request) and resolution climbs one level.
func (ev *Evaluator) RegisterNeed(rs *RecordState, request FetchRequest) (*State, error) {
	ev.logNeed(request, rs.M.D)
	next, err := registerNeed(rs, request, &ev.degrees)
	ev.logFetch(request, err == nil, rs.M.D)
	return next, err
}

// CompleteDone freezes rs's current Evaluating node to Done and collapses
// the recording via unshift_all, per spec.md §4.F "Completion".
func (ev *Evaluator) CompleteDone(rs *RecordState) (*State, error) {
	evalCtx, ok := rs.R.(Evaluating)
	if !ok {
		return nil, errorf(ErrDepthMismatch, "complete_done: record state is not Evaluating")
	}
	evalCtx.Node.toDone(composeSkip(defaultProgress(&ev.degrees), &ev.degrees))
	ev.logExit(rs.M.D)
	return unshiftAll(rs, &ev.degrees)
}

// --- state-manipulation primitives the step table relies on (spec.md §4.H) ---

// PushEnv appends v to the environment.
func PushEnv(e []*Value, v *Value) []*Value { return append(e, v) }

// PopEnv removes and returns the last environment value.
func PopEnv(e []*Value) ([]*Value, *Value, error) {
	if len(e) == 0 {
		return e, nil, errorf(ErrDepthMismatch, "pop_env: empty environment")
	}
	last := e[len(e)-1]
	return e[:len(e)-1], last, nil
}

// AssertEnvLength fatally errors if e does not have exactly n entries.
func AssertEnvLength(e []*Value, n int) error {
	if len(e) != n {
		return errorf(ErrDegreeMismatch, "assert_env_length: want %d, got %d", n, len(e))
	}
	return nil
}

// DropN discards the last n environment values.
func DropN(e []*Value, n int) ([]*Value, error) {
	if n > len(e) {
		return nil, errorf(ErrDepthMismatch, "drop_n: n=%d exceeds env length %d", n, len(e))
	}
	return e[:len(e)-n], nil
}

// EnvKeepLastN retains only the last n environment values.
func EnvKeepLastN(e []*Value, n int) ([]*Value, error) {
	if n > len(e) {
		return nil, errorf(ErrDepthMismatch, "env_keep_last_n: n=%d exceeds env length %d", n, len(e))
	}
	out := make([]*Value, n)
	copy(out, e[len(e)-n:])
	return out, nil
}

// ReturnN builds a value for "return the top n environment values",
// concatenating their sequences left to right.
func ReturnN(e []*Value, n int, depth int) (*Value, error) {
	kept, err := EnvKeepLastN(e, n)
	if err != nil {
		return nil, err
	}
	seq := EmptySeq
	for _, v := range kept {
		seq = AppendSeq(seq, v.Seq)
	}
	return NewValue(seq, depth), nil
}

// RestoreEnv replaces e wholesale with saved, the inverse of a prior
// PushEnv/DropN sequence captured by a step function.
func RestoreEnv(saved []*Value) []*Value { return saved }

// GetNextCont peels the Word at the head of k's sequence and the
// remaining tail, the shape every step uses to decide return vs continue
// at the first suspension point.
func GetNextCont(k *Value, degrees *degreeTable) (Word, *MeasuredSeq, error) {
	e, rest, ok := FrontSeq(k.Seq)
	if !ok {
		return Word{}, nil, errorf(ErrDepthMismatch, "get_next_cont: empty kontinuation")
	}
	we, isWord := e.(WordElem)
	if !isWord {
		return Word{}, nil, errorf(ErrDepthMismatch, "get_next_cont: kontinuation head is a Reference, fetch first")
	}
	_ = degrees
	return we.W, rest, nil
}
