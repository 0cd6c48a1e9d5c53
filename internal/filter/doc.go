// Package filter provides the CPU mask pipeline: rounded-rect coverage
// rasterization and separable Gaussian blur over single-channel
// float32 masks, with a memoized kernel cache for interactive reuse.
package filter
