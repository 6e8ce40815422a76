// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// Elem is the closed sum of MeasuredSeq element kinds, following the same
// defunctionalized marker-method idiom kont uses for Frame: each variant
// implements elem() and call sites dispatch via type switch.
type Elem interface {
	elem() // unexported marker method
}

// WordElem wraps a single machine Word as a sequence element.
type WordElem struct{ W Word }

func (WordElem) elem() {}

// RefElem wraps a Reference as a sequence element.
type RefElem struct{ R Reference }

func (RefElem) elem() {}

// measureElem computes the Measure of a single element. Word elements
// need the degree table to know their degree contribution; Reference
// elements carry their own valuesCount.
func measureElem(e Elem, degrees *degreeTable) (Measure, error) {
	switch v := e.(type) {
	case WordElem:
		d, err := degrees.wordDegree(v.W)
		if err != nil {
			return Measure{}, err
		}
		return wordMeasure(v.W, d), nil
	case RefElem:
		return referenceMeasure(v.R.ValuesCount), nil
	default:
		return Measure{}, errorf(ErrUnknownWordTag, "measureElem: unknown element type %T", e)
	}
}
