// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// FetchRequest names a fragment to fetch: offset logical values into the
// value at src, plus the width in words to satisfy.
type FetchRequest struct {
	Src       RefSource
	Offset    int
	WordCount int
}

// FetchResult is the exclusive hash key into a Need node's lookup table:
// the monoidal hash of the fetched fragment, plus whether that fragment
// reaches the value's own ends.
type FetchResult struct {
	FetchedHash Hash
	HavePrefix  bool
	HaveSuffix  bool
}

// Progress is the pair of closures a Need node carries: Enter drives the
// recording one level deeper (depth++) to build the subcomputation; Exit
// collapses it back (depth--). They are ordinary Go closures. The pair
// defaultProgress builds captures only the degree table, not a copy of
// the parent State's C/E/K: Enter and Exit work on whichever RecordState
// they are handed.
type Progress struct {
	Enter func(rs *RecordState) (*State, error)
	Exit  func(rs *RecordState) (*State, error)
}

// MemoNode is the closed sum of memo trie node variants: Root, BlackHole,
// Need, Done. Encoded as a marker-method sum, matching kont's Frame
// idiom.
type MemoNode struct {
	kind memoKind
	// Need fields
	request FetchRequest
	lookup  map[FetchResult]*MemoNode
	prog    Progress
	// Done fields
	skip func(rs *RecordState) (*State, error)
	once onceCell
}

type memoKind uint8

const (
	memoRoot memoKind = iota
	memoBlackHole
	memoNeed
	memoDone
)

// newRootMemo allocates a fresh Root memo slot.
func newRootMemo() *MemoNode { return &MemoNode{kind: memoRoot} }

func (n *MemoNode) isRoot() bool      { return n.kind == memoRoot }
func (n *MemoNode) isBlackHole() bool { return n.kind == memoBlackHole }
func (n *MemoNode) isNeed() bool      { return n.kind == memoNeed }
func (n *MemoNode) isDone() bool      { return n.kind == memoDone }

// toBlackHole flips a Root node in place to BlackHole, trapping if it has
// already been resolved once (BlackHole re-entry is a structural
// violation, spec.md §7.1).
func (n *MemoNode) toBlackHole() error {
	if !n.once.tryEnter() {
		return errorf(ErrBlackHoleReentry, "memo node re-entered while already resolving")
	}
	n.kind = memoBlackHole
	return nil
}

func (n *MemoNode) toNeed(req FetchRequest, prog Progress) {
	n.kind = memoNeed
	n.request = req
	n.lookup = make(map[FetchResult]*MemoNode)
	n.prog = prog
}

func (n *MemoNode) toDone(skip func(rs *RecordState) (*State, error)) {
	n.kind = memoDone
	n.skip = skip
}

// memoTable is the PC-indexed array of memo trie roots, one per
// Evaluator; sharded per instance rather than process-wide (spec.md §9
// "Global tables", resolved in SPEC_FULL.md §6).
type memoTable struct {
	roots []*MemoNode
}

func (t *memoTable) rootFor(pc PC) *MemoNode {
	for len(t.roots) <= int(pc) {
		t.roots = append(t.roots, newRootMemo())
	}
	return t.roots[pc]
}
