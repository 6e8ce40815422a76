// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// Term is an opaque unit of surface syntax the CPS/typecheck pipeline
// consumes; ant never inspects its shape.
type Term any

// Compiler is the contract an external CPS+typecheck pipeline fulfills:
// turn a program (a list of Terms) into a step table and a degree table
// ready to hand to NewEvaluator/AddExp/SetConstructorDegree. ant ships no
// implementation of Compiler — callers supply their own compiler and use
// the Evaluator construction API directly.
type Compiler interface {
	Compile(terms []Term) (steps []Step, degrees []int, err error)
}
