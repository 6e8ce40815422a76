// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// WordTag distinguishes the two kinds of machine word.
type WordTag uint8

const (
	// TagInt marks a word carrying a raw host integer. An int word always
	// denotes exactly one logical value (degree +1).
	TagInt WordTag = iota
	// TagCtor marks a word carrying a constructor id. Its contribution to
	// the degree measure is looked up in the evaluator's degree table.
	TagCtor
)

// Word is the fixed-width tagged scalar every sequence is built from.
type Word struct {
	Tag  WordTag
	Ctor int32
	Int  int64
}

// IntWord builds an int-tagged word.
func IntWord(n int64) Word {
	return Word{Tag: TagInt, Int: n}
}

// CtorWord builds a constructor-tagged word.
func CtorWord(ctag int32) Word {
	return Word{Tag: TagCtor, Ctor: ctag}
}

// degreeTable is an append-only, ascending-tag table of constructor
// degrees. It is owned by an Evaluator rather than being a package-level
// global so that independent Evaluator instances never interfere with one
// another (see Evaluator.Freeze).
type degreeTable struct {
	degrees []int
}

// set appends the degree for the next constructor tag in ascending order.
// It returns an error if ctag does not equal the table's current length,
// i.e. constructor tags were not registered in order starting from 0.
func (t *degreeTable) set(ctag int32, degree int) error {
	if int(ctag) != len(t.degrees) {
		return errorf(ErrDegreeMismatch, "set_constructor_degree: want tag %d, got %d", len(t.degrees), ctag)
	}
	t.degrees = append(t.degrees, degree)
	return nil
}

// degree returns the registered degree for ctag, or an error if ctag was
// never registered.
func (t *degreeTable) degree(ctag int32) (int, error) {
	if int(ctag) < 0 || int(ctag) >= len(t.degrees) {
		return 0, errorf(ErrUnknownWordTag, "constructor tag %d has no registered degree", ctag)
	}
	return t.degrees[ctag], nil
}

// wordDegree returns the net degree contribution of w: always +1 for an
// int word (invariant 3), or the registered constructor degree.
func (t *degreeTable) wordDegree(w Word) (int, error) {
	if w.Tag == TagInt {
		return 1, nil
	}
	return t.degree(w.Ctor)
}
