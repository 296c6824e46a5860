// Package gaps derives likely-missing catalog numbers from the set of numbers
// a collector already owns or wants. Missing values are the integers absent
// from the contiguous span between the lowest and highest known number,
// reported both individually and run-length compressed ("#4-6", "#9").
package gaps
