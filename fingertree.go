// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// MeasuredSeq is a 2-3 finger tree (Hinze & Paterson) of Elem, indexed by
// the Measure monoid. All machine state is represented as a MeasuredSeq.
//
// Internally every level of the tree — leaves and the internal node2/node3
// branches alike — is represented by the single recursive *ftNode type, so
// the tree-of-trees (affixes hold leaves, the middle holds node2/node3,
// recursively) needs no separate type per level.
type MeasuredSeq struct {
	kind  ftKind
	m     Measure
	one   *ftNode     // ftKindSingle
	left  []*ftNode   // ftKindDeep, digit of 1-4
	mid   *MeasuredSeq // ftKindDeep, tree of node2/node3
	right []*ftNode   // ftKindDeep, digit of 1-4
}

type ftKind uint8

const (
	ftKindEmpty ftKind = iota
	ftKindSingle
	ftKindDeep
)

// ftNode is either a leaf wrapping one Elem, or a node2/node3 grouping 2-3
// child nodes from the level below.
type ftNode struct {
	m        Measure
	leafElem Elem    // non-nil only for leaves
	kids     []*ftNode // len 2 or 3 for node2/node3, nil for leaves
}

func leafNode(e Elem, m Measure) *ftNode {
	return &ftNode{m: m, leafElem: e}
}

func node2(a, b *ftNode) *ftNode {
	return &ftNode{m: combineMeasure(a.m, b.m), kids: []*ftNode{a, b}}
}

func node3(a, b, c *ftNode) *ftNode {
	return &ftNode{m: combineMeasure(combineMeasure(a.m, b.m), c.m), kids: []*ftNode{a, b, c}}
}

func digitMeasure(d []*ftNode) Measure {
	m := emptyMeasure
	for _, n := range d {
		m = combineMeasure(m, n.m)
	}
	return m
}

// EmptySeq is the zero-element MeasuredSeq.
var EmptySeq = &MeasuredSeq{kind: ftKindEmpty, m: emptyMeasure}

// SeqMeasure returns the monoid measure of the whole sequence.
func SeqMeasure(s *MeasuredSeq) Measure {
	if s == nil {
		return emptyMeasure
	}
	return s.m
}

func deepSeq(left []*ftNode, mid *MeasuredSeq, right []*ftNode) *MeasuredSeq {
	if mid == nil {
		mid = EmptySeq
	}
	m := combineMeasure(digitMeasure(left), combineMeasure(mid.m, digitMeasure(right)))
	return &MeasuredSeq{kind: ftKindDeep, m: m, left: left, mid: mid, right: right}
}

func singleSeq(n *ftNode) *MeasuredSeq {
	return &MeasuredSeq{kind: ftKindSingle, m: n.m, one: n}
}

// SingletonSeq builds a one-element sequence from e, measured against the
// evaluator's degree table.
func SingletonSeq(e Elem, degrees *degreeTable) (*MeasuredSeq, error) {
	m, err := measureElem(e, degrees)
	if err != nil {
		return nil, err
	}
	return singleSeq(leafNode(e, m)), nil
}

func consNode(s *MeasuredSeq, a *ftNode) *MeasuredSeq {
	switch s.kind {
	case ftKindEmpty:
		return singleSeq(a)
	case ftKindSingle:
		return deepSeq([]*ftNode{a}, EmptySeq, []*ftNode{s.one})
	default: // ftKindDeep
		if len(s.left) < 4 {
			newLeft := make([]*ftNode, 0, len(s.left)+1)
			newLeft = append(newLeft, a)
			newLeft = append(newLeft, s.left...)
			return deepSeq(newLeft, s.mid, s.right)
		}
		l := s.left
		n3 := node3(l[1], l[2], l[3])
		return deepSeq([]*ftNode{a, l[0]}, consNode(s.mid, n3), s.right)
	}
}

func snocNode(s *MeasuredSeq, a *ftNode) *MeasuredSeq {
	switch s.kind {
	case ftKindEmpty:
		return singleSeq(a)
	case ftKindSingle:
		return deepSeq([]*ftNode{s.one}, EmptySeq, []*ftNode{a})
	default:
		if len(s.right) < 4 {
			newRight := make([]*ftNode, 0, len(s.right)+1)
			newRight = append(newRight, s.right...)
			newRight = append(newRight, a)
			return deepSeq(s.left, s.mid, newRight)
		}
		r := s.right
		n3 := node3(r[0], r[1], r[2])
		return deepSeq(s.left, snocNode(s.mid, n3), []*ftNode{r[3], a})
	}
}

// ConsSeq prepends e to s.
func ConsSeq(s *MeasuredSeq, e Elem, degrees *degreeTable) (*MeasuredSeq, error) {
	m, err := measureElem(e, degrees)
	if err != nil {
		return nil, err
	}
	return consNode(s, leafNode(e, m)), nil
}

// SnocSeq appends e to s.
func SnocSeq(s *MeasuredSeq, e Elem, degrees *degreeTable) (*MeasuredSeq, error) {
	m, err := measureElem(e, degrees)
	if err != nil {
		return nil, err
	}
	return snocNode(s, leafNode(e, m)), nil
}

// leafNodes flattens s into its leaf nodes, left to right. Used by Append
// and Split, which rebuild rather than graft subtrees — simpler than the
// textbook app3/three-way-split, at the cost of linear-time concatenation.
func leafNodes(s *MeasuredSeq, out *[]*ftNode) {
	switch s.kind {
	case ftKindEmpty:
		return
	case ftKindSingle:
		flattenNode(s.one, out)
	default:
		for _, n := range s.left {
			flattenNode(n, out)
		}
		leafNodes(s.mid, out)
		for _, n := range s.right {
			flattenNode(n, out)
		}
	}
}

func flattenNode(n *ftNode, out *[]*ftNode) {
	if n.kids == nil {
		*out = append(*out, n)
		return
	}
	for _, k := range n.kids {
		flattenNode(k, out)
	}
}

func seqFromLeaves(leaves []*ftNode) *MeasuredSeq {
	s := EmptySeq
	for _, n := range leaves {
		s = snocNode(s, n)
	}
	return s
}

// AppendSeq concatenates x then y.
func AppendSeq(x, y *MeasuredSeq) *MeasuredSeq {
	if x.kind == ftKindEmpty {
		return y
	}
	if y.kind == ftKindEmpty {
		return x
	}
	var leaves []*ftNode
	leafNodes(x, &leaves)
	leafNodes(y, &leaves)
	return seqFromLeaves(leaves)
}

// FrontSeq pops the leftmost element, returning (elem, rest, ok). ok is
// false only for an empty sequence. Rebuilds rest from scratch, in
// keeping with the rest of this file's flatten-and-rebuild approach to
// anything beyond cons/snoc.
func FrontSeq(s *MeasuredSeq) (Elem, *MeasuredSeq, bool) {
	if s.kind == ftKindEmpty {
		return nil, s, false
	}
	var leaves []*ftNode
	leafNodes(s, &leaves)
	return elemOf(leaves[0]), seqFromLeaves(leaves[1:]), true
}

// elemOf recovers the Elem a leaf node wraps; only valid on leaf nodes,
// which is all leafNodes ever produces.
func elemOf(n *ftNode) Elem { return n.leafElem }

// BackSeq pops the rightmost element, returning (rest, elem, ok). ok is
// false only for an empty sequence.
func BackSeq(s *MeasuredSeq) (*MeasuredSeq, Elem, bool) {
	if s.kind == ftKindEmpty {
		return s, nil, false
	}
	var leaves []*ftNode
	leafNodes(s, &leaves)
	last := len(leaves) - 1
	return seqFromLeaves(leaves[:last]), elemOf(leaves[last]), true
}

// SplitSeq splits s at the point where pred, evaluated over the running
// prefix Measure, first flips from false to true. SplitSeq(pred, s) =
// (l, r) with s == AppendSeq(l, r), and if l is non-empty pred flips
// somewhere in the last element of l.
func SplitSeq(pred func(Measure) bool, s *MeasuredSeq) (*MeasuredSeq, *MeasuredSeq) {
	if s.kind == ftKindEmpty {
		return EmptySeq, EmptySeq
	}
	if !pred(s.m) {
		return s, EmptySeq
	}
	var leaves []*ftNode
	leafNodes(s, &leaves)
	acc := emptyMeasure
	for i, n := range leaves {
		next := combineMeasure(acc, n.m)
		if pred(next) {
			return seqFromLeaves(leaves[:i+1]), seqFromLeaves(leaves[i+1:])
		}
		acc = next
	}
	return seqFromLeaves(leaves), EmptySeq
}

// PopN splits off the first n logical values (not words) of s, per
// spec.md §4.C. SplitSeq already places the pivot — whichever leaf first
// brings the running MaxDegree to n — wholly into the prefix it returns;
// that is exactly right whenever the pivot's own degree lands prefix.Degree
// on n. Only when the pivot overshoots (prefix.Degree > n, which can only
// happen for a Reference, since a word always contributes the same fixed
// degree counted by MaxDegree) does it need to be split itself, with the
// excess pushed back onto the suffix.
func PopN(s *MeasuredSeq, n int, degrees *degreeTable) (*MeasuredSeq, *MeasuredSeq, error) {
	if n == 0 {
		return EmptySeq, s, nil
	}
	if SeqMeasure(s).MaxDegree < n {
		return nil, nil, errorf(ErrDegreeMismatch, "pop_n: n=%d exceeds sequence degree", n)
	}
	prefix, suffix := SplitSeq(func(m Measure) bool { return m.MaxDegree >= n }, s)
	have := SeqMeasure(prefix).Degree
	if have == n {
		return prefix, suffix, nil
	}

	rest, pe, ok := BackSeq(prefix)
	if !ok {
		return nil, nil, errorf(ErrDegreeMismatch, "pop_n: n=%d exceeds sequence degree", n)
	}
	v, isRef := pe.(RefElem)
	if !isRef {
		return nil, nil, errorf(ErrUnknownWordTag, "pop_n: word element unexpectedly overshot n=%d", n)
	}
	need := n - SeqMeasure(rest).Degree
	if v.R.ValuesCount < need {
		return nil, nil, errorf(ErrDegreeMismatch, "pop_n: reference covers %d values, need %d", v.R.ValuesCount, need)
	}
	left := Reference{Src: v.R.Src, Offset: v.R.Offset, ValuesCount: need}
	newPrefix, err := SnocSeq(rest, RefElem{R: left}, degrees)
	if err != nil {
		return nil, nil, err
	}
	newSuffix := suffix
	if v.R.ValuesCount > need {
		right := Reference{Src: v.R.Src, Offset: v.R.Offset + need, ValuesCount: v.R.ValuesCount - need}
		newSuffix, err = ConsSeq(suffix, RefElem{R: right}, degrees)
		if err != nil {
			return nil, nil, err
		}
	}
	return newPrefix, newSuffix, nil
}
