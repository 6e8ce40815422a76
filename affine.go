// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import (
	"sync/atomic"
)

// onceCell is a one-shot latch: it may be entered at most once. It backs the
// BlackHole reentrance trap (memo.go) — a memo node slot may be flipped
// from Root to BlackHole at most once, the same affine-use invariant kont's Affine
// enforced for continuation resumption, narrowed here to a boolean latch
// since resolving a memo node carries no value to hand back to a caller.
type onceCell struct {
	entered atomic.Bool
}

// tryEnter reports whether this is the first call to tryEnter on c.
// Subsequent calls return false.
func (c *onceCell) tryEnter() bool {
	return c.entered.CompareAndSwap(false, true)
}

// isEntered reports whether tryEnter has already succeeded once.
func (c *onceCell) isEntered() bool {
	return c.entered.Load()
}
