// Package gpu provides the wgpu/hal blur accelerator.
//
// Importing the package registers the accelerator with shadowbox:
//
//	import _ "github.com/gogpu/shadowbox/gpu"
//
// A mask request dispatches one compute pass that evaluates the
// Gaussian-blurred rounded-rect coverage analytically per pixel. On
// machines without a usable Vulkan device the package registers a
// capability-less accelerator and rendering stays on the CPU path.
// Build with -tags nogpu to drop the GPU dependency entirely.
package gpu
