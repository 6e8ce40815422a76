// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant_test

import (
	"math/rand"
	"testing"

	"github.com/ant-lang/ant"
)

// degreeSetup builds an evaluator with a handful of registered
// constructor degrees, reused across the property tests below: ctag 0 is
// a nil-like leaf (degree 1), ctag 1 is a binary cons (degree -1).
func degreeSetup(t *testing.T) *ant.Evaluator {
	t.Helper()
	ev := ant.NewEvaluator()
	if err := ev.SetConstructorDegree(0, 1); err != nil {
		t.Fatalf("SetConstructorDegree(0): %v", err)
	}
	if err := ev.SetConstructorDegree(1, -1); err != nil {
		t.Fatalf("SetConstructorDegree(1): %v", err)
	}
	return ev
}

func randomWordSeq(t *testing.T, rnd *rand.Rand, n int, degrees func() *ant.Evaluator) *ant.MeasuredSeq {
	t.Helper()
	ev := degrees()
	seq := ant.EmptySeq
	for i := 0; i < n; i++ {
		var w ant.Word
		if rnd.Intn(3) == 0 {
			w = ant.CtorWord(int32(rnd.Intn(2)))
		} else {
			w = ant.IntWord(int64(rnd.Intn(1000)))
		}
		next, err := ant.SnocSeq(seq, ant.WordElem{W: w}, ev.Degrees())
		if err != nil {
			t.Fatalf("SnocSeq: %v", err)
		}
		seq = next
	}
	return seq
}

// P1: measure is a monoid homomorphism over append, checked here via the
// degree of a split sequence appended back together (the identity is
// checked by TestMeasureIdentity).
func TestMeasureMonoidHomomorphism(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		ev := degreeSetup(t)
		n := rnd.Intn(12)
		k := rnd.Intn(n + 1)
		full := randomWordSeq(t, rnd, n, func() *ant.Evaluator { return ev })
		a, b := ant.SplitSeq(func(m ant.Measure) bool { return m.Full != nil && m.Full.Length >= k }, full)

		combined := ant.AppendSeq(a, b)
		got := ant.SeqMeasure(combined)
		want := ant.SeqMeasure(full)
		if got.Degree != want.Degree {
			t.Fatalf("trial %d: degree mismatch after append round-trip: got %d want %d", trial, got.Degree, want.Degree)
		}
	}
}

func TestMeasureIdentity(t *testing.T) {
	m := ant.SeqMeasure(ant.EmptySeq)
	if m.Degree != 0 || m.MaxDegree != 0 {
		t.Fatalf("empty sequence measure should be zero, got %+v", m)
	}
	if m.Full == nil || m.Full.Length != 0 {
		t.Fatalf("empty sequence should be fully materialized with length 0, got %+v", m.Full)
	}
}

// P2: split(pred, s) = (l, r) => s == l ++ r, checked via degree (we have
// no structural equality beyond measure), and the degrees of l and r add
// up to the degree of s.
func TestSplitSeqCorrectness(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		ev := degreeSetup(t)
		n := rnd.Intn(10) + 1
		seq := randomWordSeq(t, rnd, n, func() *ant.Evaluator { return ev })
		total := ant.SeqMeasure(seq)
		target := rnd.Intn(total.MaxDegree + 1)

		l, r := ant.SplitSeq(func(m ant.Measure) bool { return m.MaxDegree >= target }, seq)
		lm := ant.SeqMeasure(l)
		rm := ant.SeqMeasure(r)
		combined := ant.SeqMeasure(ant.AppendSeq(l, r))
		if combined.Degree != total.Degree {
			t.Fatalf("trial %d: split+append degree mismatch: got %d want %d", trial, combined.Degree, total.Degree)
		}
		if lm.Degree+rm.Degree != total.Degree {
			t.Fatalf("trial %d: degree accounting broken across split", trial)
		}
	}
}

// P3: pop_n(s, n) = (l, r) => degree(l) == n and degree(l) == max_degree(l).
func TestPopNExactness(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		ev := degreeSetup(t)
		wordN := rnd.Intn(8) + 1
		seq := randomWordSeq(t, rnd, wordN, func() *ant.Evaluator { return ev })
		total := ant.SeqMeasure(seq)
		if total.Degree <= 0 {
			continue
		}
		n := rnd.Intn(total.Degree) + 1
		l, _, err := ant.PopN(seq, n, ev.Degrees())
		if err != nil {
			t.Fatalf("trial %d: PopN(%d): %v", trial, n, err)
		}
		lm := ant.SeqMeasure(l)
		if lm.Degree != n {
			t.Fatalf("trial %d: PopN(%d) prefix degree = %d, want %d", trial, n, lm.Degree, n)
		}
		if lm.Degree != lm.MaxDegree {
			t.Fatalf("trial %d: PopN(%d) prefix degree %d != max_degree %d", trial, n, lm.Degree, lm.MaxDegree)
		}
	}
}

func TestPopNZero(t *testing.T) {
	ev := degreeSetup(t)
	seq := randomWordSeq(t, rand.New(rand.NewSource(7)), 5, func() *ant.Evaluator { return ev })
	l, r, err := ant.PopN(seq, 0, ev.Degrees())
	if err != nil {
		t.Fatalf("PopN(0): %v", err)
	}
	if ant.SeqMeasure(l).Degree != 0 {
		t.Fatalf("PopN(0) prefix should be empty, got degree %d", ant.SeqMeasure(l).Degree)
	}
	if ant.SeqMeasure(r).Degree != ant.SeqMeasure(seq).Degree {
		t.Fatalf("PopN(0) suffix should equal input")
	}
}

func TestConsSnocOrderPreserved(t *testing.T) {
	ev := degreeSetup(t)
	seq := ant.EmptySeq
	var err error
	seq, err = ant.SnocSeq(seq, ant.WordElem{W: ant.IntWord(1)}, ev.Degrees())
	if err != nil {
		t.Fatalf("SnocSeq: %v", err)
	}
	seq, err = ant.SnocSeq(seq, ant.WordElem{W: ant.IntWord(2)}, ev.Degrees())
	if err != nil {
		t.Fatalf("SnocSeq: %v", err)
	}
	seq, err = ant.ConsSeq(seq, ant.WordElem{W: ant.IntWord(0)}, ev.Degrees())
	if err != nil {
		t.Fatalf("ConsSeq: %v", err)
	}

	e, rest, ok := ant.FrontSeq(seq)
	if !ok {
		t.Fatal("FrontSeq on non-empty sequence returned ok=false")
	}
	we, isWord := e.(ant.WordElem)
	if !isWord || we.W.Int != 0 {
		t.Fatalf("expected front element to be int word 0, got %+v", e)
	}
	if ant.SeqMeasure(rest).Degree != 2 {
		t.Fatalf("expected two remaining values, got degree %d", ant.SeqMeasure(rest).Degree)
	}
}
