//go:build !noasm && amd64

package clause

import "github.com/klauspost/cpuid/v2"

import "github.com/neurlang/tsetlin/automaton"

func init() {
	// Check if the CPU supports AVX2
	if cpuid.CPU.Supports(cpuid.AVX, cpuid.AVX2) {
		evaluate = evaluateAVX2
		vectorized = true
	} else {
		evaluate = evaluatePacked
		vectorized = false
	}
}

func evaluateAVX2(r automaton.Row, in *Input) bool {
	var mask = r.Mask()
	if len(in.Packed) < len(mask) {
		return EvaluatePacked(r, in.Packed)
	}
	return !anyAndNotAVX2(mask, in.Packed)
}

// anyAndNotAVX2 reports whether mask[w] &^ packed[w] is non zero for some w < len(mask),
// four words per VPTEST. packed must be at least as long as mask.
//
//go:noescape
func anyAndNotAVX2(mask, packed []uint64) bool
