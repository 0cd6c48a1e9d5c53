//go:build nogpu

package gpu

// The nogpu build tag strips the wgpu/hal dependency and its Vulkan
// loader entirely; the software renderer's CPU pipeline covers all
// mask generation.
