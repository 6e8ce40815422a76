// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Config carries the ambient settings of one Evaluator: its logger and
// run identifier. It has no bearing on memo-protocol outcomes — two
// Evaluators built with different Configs but the same exp/degree tables
// must still behave identically, aside from what gets logged.
type Config struct {
	Logger *slog.Logger
	RunID  string
}

// Option mutates a Config at NewEvaluator construction time.
type Option func(*Config)

// WithLogger overrides the evaluator's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithRunID overrides the evaluator's run identifier, normally a fresh
// UUID per NewEvaluator call (see defaultConfig).
func WithRunID(id string) Option {
	return func(c *Config) { c.RunID = id }
}

func defaultConfig() Config {
	return Config{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, nil)),
		RunID:  uuid.NewString(),
	}
}
