// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ant-lang/ant"
)

// echoStep is a trivial, non-memoizing single-step program: it copies E[0]
// onto K and signals done immediately. It exists to exercise ExecCEK's
// driver mechanics (freeze-on-first-run, pc bounds, done signaling)
// without involving the memo trie.
func echoStep(ev *ant.Evaluator, state *ant.State) (*ant.State, bool, error) {
	state.K = ant.NewValue(state.E[0].Seq, state.D)
	return state, true, nil
}

func newEchoEvaluator(t *testing.T) (*ant.Evaluator, ant.PC) {
	t.Helper()
	ev := ant.NewEvaluator()
	pc, err := ev.AddExp(echoStep)
	require.NoError(t, err)
	return ev, pc
}

func TestExecCEKRunsToCompletion(t *testing.T) {
	ev, pc := newEchoEvaluator(t)
	env := []*ant.Value{ant.NewValue(ant.FromInt(42), 0)}
	result, err := ev.ExecCEK(pc, env, ant.NewValue(ant.EmptySeq, 0))
	require.NoError(t, err)

	n, err := ant.ToInt(result)
	require.NoError(t, err)
	require.Equal(t, int64(42), n)
}

func TestExecCEKFreezesAfterFirstRun(t *testing.T) {
	ev, pc := newEchoEvaluator(t)
	env := []*ant.Value{ant.NewValue(ant.FromInt(1), 0)}
	_, err := ev.ExecCEK(pc, env, ant.NewValue(ant.EmptySeq, 0))
	require.NoError(t, err)

	_, err = ev.AddExp(echoStep)
	require.ErrorIs(t, err, ant.ErrFrozen)

	err = ev.SetConstructorDegree(0, 1)
	require.ErrorIs(t, err, ant.ErrFrozen)
}

func TestExecCEKRejectsOutOfRangePC(t *testing.T) {
	ev, pc := newEchoEvaluator(t)
	env := []*ant.Value{ant.NewValue(ant.FromInt(1), 0)}
	_, err := ev.ExecCEK(pc+1, env, ant.NewValue(ant.EmptySeq, 0))
	require.Error(t, err)
}

// P7 (memo determinism): running ExecCEK twice with identical inputs
// produces the same final sequence.
func TestExecCEKDeterministic(t *testing.T) {
	env := []*ant.Value{ant.NewValue(ant.FromInt(7), 0)}

	ev1, pc1 := newEchoEvaluator(t)
	r1, err := ev1.ExecCEK(pc1, env, ant.NewValue(ant.EmptySeq, 0))
	require.NoError(t, err)
	n1, err := ant.ToInt(r1)
	require.NoError(t, err)

	ev2, pc2 := newEchoEvaluator(t)
	r2, err := ev2.ExecCEK(pc2, env, ant.NewValue(ant.EmptySeq, 0))
	require.NoError(t, err)
	n2, err := ant.ToInt(r2)
	require.NoError(t, err)

	require.Equal(t, n1, n2)
}
