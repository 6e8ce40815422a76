// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// Structured tracing of the four memo-protocol outcomes named in
// spec.md §7 ("every memo-protocol outcome is one of {skip, enter, exit,
// need}"), logged through each Evaluator's own log/slog logger and tagged with the
// evaluator's run id so concurrent Evaluators' logs can be told apart.

func (ev *Evaluator) logEnter(pc PC, depth int) {
	ev.cfg.Logger.Debug("memo enter", "run_id", ev.cfg.RunID, "pc", pc, "depth", depth)
}

func (ev *Evaluator) logExit(depth int) {
	ev.cfg.Logger.Debug("memo exit", "run_id", ev.cfg.RunID, "depth", depth)
}

func (ev *Evaluator) logSkip(pc PC, depth int) {
	ev.cfg.Logger.Debug("memo skip", "run_id", ev.cfg.RunID, "pc", pc, "depth", depth)
}

func (ev *Evaluator) logNeed(request FetchRequest, depth int) {
	ev.cfg.Logger.Debug("memo need",
		"run_id", ev.cfg.RunID,
		"depth", depth,
		"offset", request.Offset,
		"word_count", request.WordCount,
	)
}

func (ev *Evaluator) logFetch(request FetchRequest, ok bool, depth int) {
	ev.cfg.Logger.Debug("fetch",
		"run_id", ev.cfg.RunID,
		"depth", depth,
		"offset", request.Offset,
		"word_count", request.WordCount,
		"ok", ok,
	)
}
