// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

// SL2-style monoidal hash: each Word maps to a 2x2 matrix over GF(mersennePrime),
// and sequences compose their hashes by ordinary (non-commutative) matrix
// multiplication. Because multiplication is associative, a sequence's hash
// can be computed by folding over any split of its elements in order,
// which is exactly what the finger tree's internal measure combine does.

// mersennePrime is 2^31-1, chosen so that a*b for a,b < p fits in a uint64
// without overflow, leaving modular reduction a single division.
const mersennePrime uint64 = (1 << 31) - 1

// Hash is a 2x2 matrix over GF(mersennePrime), (| a b ; c d |).
type Hash struct {
	A, B, C, D uint64
}

// IdentityHash is the multiplicative identity: the hash of an empty word
// sequence.
var IdentityHash = Hash{A: 1, B: 0, C: 0, D: 1}

func modp(x uint64) uint64 {
	return x % mersennePrime
}

// CombineHash composes two hashes in sequence order: x is the hash of the
// earlier words, y of the later ones. Non-commutative: CombineHash(x, y) is
// generally not CombineHash(y, x).
func CombineHash(x, y Hash) Hash {
	return Hash{
		A: modp(modp(x.A*y.A) + modp(x.B*y.C)),
		B: modp(modp(x.A*y.B) + modp(x.B*y.D)),
		C: modp(modp(x.C*y.A) + modp(x.D*y.C)),
		D: modp(modp(x.C*y.B) + modp(x.D*y.D)),
	}
}

// HashFromWord maps a single word to its generator matrix. Int words and
// constructor words use distinct generators, and the word's own scalar
// payload is folded into the matrix so that distinct words of the same tag
// hash differently.
func HashFromWord(w Word) Hash {
	var payload uint64
	switch w.Tag {
	case TagInt:
		payload = modp(uint64(w.Int)*2 + 1)
		return Hash{A: 1, B: payload, C: 0, D: 1}
	default:
		payload = modp(uint64(w.Ctor)*2 + 3)
		return Hash{A: 1, B: 0, C: payload, D: 1}
	}
}
