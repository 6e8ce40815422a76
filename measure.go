// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// FullInfo is present on a Measure exactly when the fragment it describes
// contains no Reference — i.e. it is fully materialized words, so a
// length and a monoidal hash can be computed for it.
type FullInfo struct {
	Length int
	Hash   Hash
}

// Measure is the monoid MeasuredSeq is indexed by: net degree, peak
// prefix degree, and (when the fragment is reference-free) length and
// hash. combine must be associative with identity emptyMeasure.
type Measure struct {
	Degree    int
	MaxDegree int
	Full      *FullInfo
}

// emptyMeasure is the measure of the empty sequence, the monoid identity.
var emptyMeasure = Measure{Full: &FullInfo{Length: 0, Hash: IdentityHash}}

// wordMeasure is the measure of a single word, given its degree
// contribution from the evaluator's degree table.
func wordMeasure(w Word, degree int) Measure {
	return Measure{
		Degree:    degree,
		MaxDegree: max(degree, 0),
		Full:      &FullInfo{Length: 1, Hash: HashFromWord(w)},
	}
}

// referenceMeasure is the measure of a single Reference element: it
// stands for valuesCount logical values and carries no Full info, since a
// reference is not materialized words.
func referenceMeasure(valuesCount int) Measure {
	return Measure{Degree: valuesCount, MaxDegree: max(valuesCount, 0)}
}

// combineMeasure composes the measures of two adjacent fragments, x before
// y. max_degree composes as max(x.max_degree, x.degree + y.max_degree),
// per spec.
func combineMeasure(x, y Measure) Measure {
	m := Measure{
		Degree:    x.Degree + y.Degree,
		MaxDegree: max(x.MaxDegree, x.Degree+y.MaxDegree),
	}
	if x.Full != nil && y.Full != nil {
		m.Full = &FullInfo{
			Length: x.Full.Length + y.Full.Length,
			Hash:   CombineHash(x.Full.Hash, y.Full.Hash),
		}
	}
	return m
}
