// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// RefSource identifies where a Reference resolves against: an
// environment slot, a store slot, or the kontinuation.
type RefSource interface {
	refSource() // unexported marker method
}

// EnvSource references environment slot i.
type EnvSource struct{ I int }

func (EnvSource) refSource() {}

// StoreSource references store slot i.
type StoreSource struct{ I int }

func (StoreSource) refSource() {}

// KSource references the kontinuation.
type KSource struct{}

func (KSource) refSource() {}

// Reference is a pointer to a not-yet-inlined fragment of some other
// value's sequence: offset logical values (counted by degree, as PopN
// counts them) skipped from the start, standing for valuesCount logical
// values.
type Reference struct {
	Src         RefSource
	Offset      int
	ValuesCount int
}
