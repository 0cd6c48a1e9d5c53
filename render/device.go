// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (a window framework or compute harness) owns the device and
// hands it in; shadowbox never creates one. This keeps the shadow
// renderer a guest on whatever GPU context the application already
// runs, with shared resource management across the stack.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so host
// implementations written against the gpucontext ecosystem plug in
// without adaptation.
type DeviceHandle = gpucontext.DeviceProvider

// FrameTextureDescriptor describes the texture a host allocates to
// present a rendered shadow frame.
type FrameTextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the frame dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage FrameTextureUsage
}

// FrameTextureUsage specifies how a frame texture can be used.
// Flags combine with bitwise OR.
type FrameTextureUsage uint32

const (
	// FrameTextureUsageCopySrc allows use as a copy source.
	FrameTextureUsageCopySrc FrameTextureUsage = 1 << iota

	// FrameTextureUsageCopyDst allows use as a copy destination.
	FrameTextureUsageCopyDst

	// FrameTextureUsageBinding allows sampling in a shader.
	FrameTextureUsageBinding

	// FrameTextureUsageRenderAttachment allows use as a render target.
	FrameTextureUsageRenderAttachment
)

// DefaultFrameTextureDescriptor returns a descriptor for presenting a
// CPU-composited frame: copy destination plus sampled binding.
func DefaultFrameTextureDescriptor(width, height uint32, format gputypes.TextureFormat) FrameTextureDescriptor {
	return FrameTextureDescriptor{
		Width:  width,
		Height: height,
		Format: format,
		Usage:  FrameTextureUsageCopyDst | FrameTextureUsageBinding,
	}
}

// DeviceCapabilities describes what a host GPU device can do, used to
// decide whether the analytic blur accelerator is worth registering.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize uint32

	// SupportsCompute indicates compute shader availability. The blur
	// accelerator requires it.
	SupportsCompute bool

	// VendorName and DeviceName identify the GPU for logging.
	VendorName string
	DeviceName string
}

// NullDeviceHandle is a DeviceHandle with no device behind it, for
// CPU-only rendering and tests.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ DeviceHandle = NullDeviceHandle{}
