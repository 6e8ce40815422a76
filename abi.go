// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// FromInt encodes a host integer as a single-word, reference-free
// sequence.
func FromInt(n int64) *MeasuredSeq {
	return singleSeq(leafNode(WordElem{W: IntWord(n)}, wordMeasure(IntWord(n), 1)))
}

// FromConstructor encodes a constructor tag as a single-word sequence,
// looking up its degree in degrees.
func FromConstructor(ctag int32, degrees *degreeTable) (*MeasuredSeq, error) {
	w := CtorWord(ctag)
	d, err := degrees.degree(ctag)
	if err != nil {
		return nil, err
	}
	return singleSeq(leafNode(WordElem{W: w}, wordMeasure(w, d))), nil
}

// Appends left-folds concatenation over seqs.
func Appends(seqs []*MeasuredSeq) *MeasuredSeq {
	out := EmptySeq
	for _, s := range seqs {
		out = AppendSeq(out, s)
	}
	return out
}

// Splits is the inverse of Appends for a fully materialized (no
// reference) sequence: it splits seq at every value boundary determined
// by constructor degrees, i.e. wherever the running MaxDegree first
// reaches each successive integer.
func Splits(seq *MeasuredSeq, degrees *degreeTable) ([]*MeasuredSeq, error) {
	var out []*MeasuredSeq
	rest := seq
	for rest.kind != ftKindEmpty {
		one, tail, err := PopN(rest, 1, degrees)
		if err != nil {
			return nil, err
		}
		out = append(out, one)
		rest = tail
	}
	return out, nil
}

// ToInt extracts the integer value of a one-word, int-tagged sequence.
func ToInt(seq *MeasuredSeq) (int64, error) {
	e, _, ok := FrontSeq(seq)
	if !ok {
		return 0, errorf(ErrDepthMismatch, "to_int: empty sequence")
	}
	we, isWord := e.(WordElem)
	if !isWord || we.W.Tag != TagInt {
		return 0, errorf(ErrUnknownWordTag, "to_int: head is not an int word")
	}
	return we.W.Int, nil
}

// ListMatch peels the head Word and remaining tail off seq, or reports
// false for an empty sequence.
func ListMatch(seq *MeasuredSeq) (Word, *MeasuredSeq, bool) {
	e, rest, ok := FrontSeq(seq)
	if !ok {
		return Word{}, nil, false
	}
	we, isWord := e.(WordElem)
	if !isWord {
		return Word{}, nil, false
	}
	return we.W, rest, true
}
