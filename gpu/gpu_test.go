//go:build !nogpu

package gpu

import (
	"image"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shadowbox"
)

func TestShaderSourceEmbedded(t *testing.T) {
	src := BlurredRRectShaderSource()
	if src == "" {
		t.Fatal("embedded shader source is empty")
	}
	for _, want := range []string{"@compute", "workgroup_size(8, 8", "var<uniform> params", "var<storage, read_write> mask"} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

func TestMaskParamsLayout(t *testing.T) {
	// Must match the Params uniform in blurred_rrect.wgsl: six f32
	// followed by two u32, 32 bytes, no padding.
	if size := unsafe.Sizeof(maskParams{}); size != 32 {
		t.Errorf("maskParams size = %d, want 32", size)
	}
	var p maskParams
	if off := unsafe.Offsetof(p.Radius); off != 16 {
		t.Errorf("Radius offset = %d, want 16", off)
	}
	if off := unsafe.Offsetof(p.Width); off != 24 {
		t.Errorf("Width offset = %d, want 24", off)
	}
}

func TestAcceleratorName(t *testing.T) {
	a := New()
	if a.Name() != "wgpu-blur" {
		t.Errorf("Name() = %q, want wgpu-blur", a.Name())
	}
}

func TestCanAccelerateRequiresGPU(t *testing.T) {
	// A fresh accelerator has not probed for a device, so it must not
	// claim any capability.
	a := New()
	if a.CanAccelerate(shadowbox.AccelBlurredRRectMask) {
		t.Error("uninitialized accelerator claims acceleration")
	}
	if a.CanAccelerate(shadowbox.AccelRRectMask) {
		t.Error("uninitialized accelerator claims acceleration")
	}
}

func TestMaskRequestWithoutGPUFallsBack(t *testing.T) {
	a := New()
	_, err := a.BlurredRRectMask(8, 8, shadowbox.NewRect(1, 1, 7, 7), 2, 1)
	if err != shadowbox.ErrFallbackToCPU {
		t.Errorf("err = %v, want ErrFallbackToCPU", err)
	}
}

func TestCloseWithoutInit(t *testing.T) {
	a := New()
	a.Close() // must not panic
}

// stubQueue implements hal.Queue with a scripted completion counter, so
// the submission-wait path is exercised without a device. The interface
// assertion also pins the Submit call shape this package depends on.
type stubQueue struct {
	completed uint64
	polls     int
	lag       int // polls before the submission reports complete
}

var _ hal.Queue = (*stubQueue)(nil)

func (q *stubQueue) Submit([]hal.CommandBuffer) (uint64, error) {
	q.completed++
	return q.completed + uint64(q.lag), nil
}

func (q *stubQueue) PollCompleted() uint64 {
	q.polls++
	if q.lag > 0 {
		q.lag--
		return q.completed - 1
	}
	return q.completed
}

func (q *stubQueue) WriteBuffer(hal.Buffer, uint64, []byte) error { return nil }

func (q *stubQueue) WriteTexture(*hal.ImageCopyTexture, []byte, *hal.ImageDataLayout, *hal.Extent3D) error {
	return nil
}

func (q *stubQueue) Present(hal.Surface, hal.SurfaceTexture, []image.Rectangle) error { return nil }

func (q *stubQueue) GetTimestampPeriod() float32 { return 1 }

func (q *stubQueue) SupportsCommandBufferCopies() bool { return false }

func (q *stubQueue) SetSwapchainSuppressed(bool) {}

func TestWaitForSubmissionCompleted(t *testing.T) {
	q := &stubQueue{completed: 3}
	if err := waitForSubmission(q, 3, time.Second); err != nil {
		t.Errorf("waitForSubmission() = %v, want nil", err)
	}
	if q.polls != 1 {
		t.Errorf("polls = %d, want 1 for an already-completed submission", q.polls)
	}
}

func TestWaitForSubmissionPollsUntilDone(t *testing.T) {
	q := &stubQueue{completed: 5, lag: 3}
	if err := waitForSubmission(q, 5, time.Second); err != nil {
		t.Errorf("waitForSubmission() = %v, want nil", err)
	}
	if q.polls != 4 {
		t.Errorf("polls = %d, want 4", q.polls)
	}
}

func TestWaitForSubmissionTimeout(t *testing.T) {
	q := &stubQueue{completed: 0}
	if err := waitForSubmission(q, 10, time.Millisecond); err == nil {
		t.Error("waitForSubmission() = nil, want timeout error")
	}
}

func TestMaskFromMapping(t *testing.T) {
	src := []float32{0, 0.25, 0.5, 0.75, 1}
	mask := maskFromMapping(unsafe.Pointer(&src[0]), len(src))

	for i, want := range src {
		if mask[i] != want {
			t.Errorf("mask[%d] = %v, want %v", i, mask[i], want)
		}
	}

	// The copy must detach from the mapped memory.
	src[0] = 9
	if mask[0] != 0 {
		t.Error("mask aliases the mapped buffer")
	}
}
