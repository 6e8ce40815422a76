// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import (
	"sync"
	"testing"
)

func TestOnceCellFirstEntrySucceeds(t *testing.T) {
	var c onceCell
	if !c.tryEnter() {
		t.Fatal("expected first tryEnter to succeed")
	}
	if !c.isEntered() {
		t.Fatal("expected isEntered to be true after tryEnter")
	}
}

func TestOnceCellSecondEntryFails(t *testing.T) {
	var c onceCell
	if !c.tryEnter() {
		t.Fatal("expected first tryEnter to succeed")
	}
	if c.tryEnter() {
		t.Fatal("expected second tryEnter to fail")
	}
}

func TestOnceCellConcurrentEntryIsExclusive(t *testing.T) {
	var c onceCell
	var wg sync.WaitGroup
	successes := make(chan bool, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			successes <- c.tryEnter()
		}()
	}
	wg.Wait()
	close(successes)

	won := 0
	for ok := range successes {
		if ok {
			won++
		}
	}
	if won != 1 {
		t.Fatalf("expected exactly one winner, got %d", won)
	}
}
