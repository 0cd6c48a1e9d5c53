// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes scenes on concrete surfaces.
//
// Software is the CPU backend: a premultiplied float32 layer stack with
// Porter-Duff compositing, resolved to an 8-bit pixmap at readback.
// Lifecycle wraps it in the suspended/active session state machine that
// windowing hosts expect, and DeviceHandle is the integration point for
// hosts that share a GPU device with the blur accelerator.
package render
