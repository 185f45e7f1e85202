// Package isalnum implements the IsAlnum Dataset: every byte, labelled true for ASCII letters and digits
package isalnum

import "github.com/neurlang/tsetlin/datasets"

// Width is the number of features of a sample, one per bit of the byte
const Width = 8

type Dataslice struct{}

func (d Dataslice) Get(n int) Sample {
	return Sample(n)
}
func (d Dataslice) Len() int {
	return 256
}

// Set materializes the Dataslice keyed by byte value
func (d Dataslice) Set() (set datasets.Bits) {
	set.Init()
	for i := 0; i < d.Len(); i++ {
		set[d.Get(i).Feature()] = d.Get(i).Output()
	}
	return
}

// Dataset returns the 256 bytes as Width boolean features each
func Dataset() datasets.Dataset {
	return Dataslice{}.Set().Rows(Width)
}

type Sample byte

func (c Sample) Feature() uint32 {
	return uint32(c)
}

func (c Sample) Output() bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
