// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ant implements a memoizing CEK machine: an incremental evaluator
// for CPS-compiled terms that re-executes only the parts of a program whose
// inputs changed since the previous run, by recording and replaying fetches
// against a hash-indexed memo trie.
//
// # Core Model
//
// A run threads a Control/Environment/Kontinuation triple through an
// append-only, numbered step table (see [Evaluator.ExecCEK]). Every value is
// a [Value] record carrying a [MeasuredSeq] of machine [Word]s and
// [Reference]s; a Reference stands for a fragment of an environment slot, a
// [Store] slot, or the kontinuation one recording depth down. This
// indirection is what lets a later run fetch only the fragments of a value
// it actually needs, instead of re-deriving the whole thing.
//
// Sequences are 2-3 finger trees (Hinze & Paterson) measured by a monoid
// that tracks net degree, peak prefix degree, and, for reference-free
// fragments, length and a running SL2 hash — an associative,
// non-commutative digest computed by multiplying 2x2 matrices modulo a
// Mersenne prime. Cons and snoc add one element to the tree; append,
// split and front flatten the whole sequence to its leaves and rebuild it,
// so they take time linear in the sequence length.
//
// # Memoization
//
// Each depth of recursion carries its own [RecordState]: a store, a fetch
// counter, and a record-context ([Building], [Evaluating], or
// [Reentrance]). Fetches made while building a value are logged against a
// trie of [MemoNode]s ([Root], [BlackHole], [Need], [Done]); replaying a
// prior run walks the same trie and either confirms a hit ([Done]) or
// detects that upstream input changed and the fragment must be rebuilt
// ([Need]). [BlackHole] guards against reentering a node that is still
// under construction — see [Progress.Enter] and [Progress.Exit].
//
// # Boundary
//
// [Compiler] and [Term] describe the contract with the CPS-producing,
// type-checking front end this package is paired with; ant implements
// neither — it only consumes their output. Internal protocol violations (a
// black hole re-entered, a degree mismatch) are returned as
// *StructuralError values; ExecCEK also recovers any panic raised during a
// run into a returned error at the single outer boundary.
package ant
