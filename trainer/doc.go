// Package trainer drives Tsetlin machine training epoch by epoch. It measures
// accuracy between epochs, stops early on a target accuracy, on stalled
// progress or on context cancellation, and optionally reshuffles the samples
// with its own seeded generator.
package trainer
