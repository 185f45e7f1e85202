package clause

// Input is one sample expressed as literals: literal 2k is feature k and
// literal 2k+1 is its negation. Both the plain and the packed form are kept
// so that either evaluator can run without converting.
type Input struct {
	Literals []bool
	Packed   []uint64
}

// NewInput allocates an input for features features
func NewInput(features int) *Input {
	return &Input{
		Literals: make([]bool, 2*features),
		Packed:   make([]uint64, (2*features+63)/64),
	}
}

// Load fills the input from a feature vector of the size passed to NewInput
func (in *Input) Load(features []bool) {
	Literals(features, in.Literals)
	Pack(in.Literals, in.Packed)
}

// Literals writes the 2*len(features) literals into dst, growing it if needed
func Literals(features []bool, dst []bool) []bool {
	if cap(dst) < 2*len(features) {
		dst = make([]bool, 2*len(features))
	}
	dst = dst[:2*len(features)]
	for i, v := range features {
		dst[2*i] = v
		dst[2*i+1] = !v
	}
	return dst
}

// Pack stores literal k as bit k%64 of word k/64
func Pack(literals []bool, dst []uint64) []uint64 {
	var words = (len(literals) + 63) / 64
	if cap(dst) < words {
		dst = make([]uint64, words)
	}
	dst = dst[:words]
	for i := range dst {
		dst[i] = 0
	}
	for k, v := range literals {
		if v {
			dst[k>>6] |= 1 << (uint(k) & 63)
		}
	}
	return dst
}
