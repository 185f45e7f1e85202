// Package datasets implements the boolean datasets used to train and test Tsetlin machines
package datasets

import "sort"

// Dataset is a boolean feature matrix with one label per row
type Dataset struct {
	Features [][]bool
	Labels   []bool
}

// Len returns the number of rows
func (d Dataset) Len() int {
	return len(d.Labels)
}

// XOR returns the four row exclusive or dataset
func XOR() Dataset {
	return Dataset{
		Features: [][]bool{
			{true, false},
			{false, true},
			{true, true},
			{false, false},
		},
		Labels: []bool{true, true, false, false},
	}
}

// Conjunction returns the full truth table of features inputs, labelled
// with their logical AND. Row i holds bit k of i as feature k.
func Conjunction(features int) (d Dataset) {
	var b Bits
	b.Init()
	var all = uint32(1)<<uint(features) - 1
	for i := uint32(0); i <= all; i++ {
		b[i] = i == all
	}
	return b.Rows(features)
}

// Bits is a dataset keyed by integer input, feature k of a key is its bit k
type Bits map[uint32]bool

func (b *Bits) Init() {
	*b = make(map[uint32]bool)
}

// Rows decodes every key into width features, in ascending key order
func (b Bits) Rows(width int) (d Dataset) {
	var keys = make([]uint32, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	d.Features = make([][]bool, len(keys))
	d.Labels = make([]bool, len(keys))
	for i, k := range keys {
		var row = make([]bool, width)
		for bit := range row {
			row[bit] = (k>>uint(bit))&1 == 1
		}
		d.Features[i] = row
		d.Labels[i] = b[k]
	}
	return
}
