package shadowbox

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this operation.
// The caller should transparently fall back to CPU rasterization.
var ErrFallbackToCPU = errors.New("shadowbox: falling back to CPU rendering")

// AcceleratedOp describes operation types for capability checking.
type AcceleratedOp uint32

const (
	// AccelBlurredRRectMask represents Gaussian-blurred rounded-rect
	// coverage mask generation.
	AccelBlurredRRectMask AcceleratedOp = 1 << iota

	// AccelRRectMask represents sharp rounded-rect coverage masks.
	AccelRRectMask
)

// Accelerator is an optional GPU acceleration provider.
//
// When registered via RegisterAccelerator, the software renderer tries
// the accelerator first for supported operations. If the accelerator
// returns ErrFallbackToCPU or any error, rasterization transparently
// falls back to the CPU path.
//
// Implementations are provided by GPU backend packages (gpu/). Users opt
// in via blank import:
//
//	import _ "github.com/gogpu/shadowbox/gpu" // enables GPU acceleration
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu-blur").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// operation. This is a fast check used to skip the GPU entirely for
	// unsupported operations.
	CanAccelerate(op AcceleratedOp) bool

	// BlurredRRectMask computes the coverage mask of a rounded rectangle
	// blurred by a 2D Gaussian of standard deviation sigma, sampled over
	// a width×height pixel grid whose origin is at (0, 0). The returned
	// slice has width*height values in [0, 1], row by row.
	//
	// Returns ErrFallbackToCPU if the mask cannot be GPU-generated.
	BlurredRRectMask(width, height int, rect Rect, radius, sigma float64) ([]float32, error)
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers a GPU accelerator.
//
// Only one accelerator can be registered; subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration. If Init() fails, the accelerator is not registered and
// the error is returned.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    if err := shadowbox.RegisterAccelerator(New()); err != nil {
//	        shadowbox.Logger().Warn("gpu accelerator unavailable", "err", err)
//	    }
//	}
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("shadowbox: nil accelerator")
	}
	if err := a.Init(); err != nil {
		return err
	}

	accelMu.Lock()
	prev := accel
	accel = a
	accelMu.Unlock()

	if prev != nil {
		prev.Close()
	}
	propagateLogger(a, Logger())
	Logger().Info("accelerator registered", "name", a.Name())
	return nil
}

// ActiveAccelerator returns the registered accelerator, or nil.
func ActiveAccelerator() Accelerator {
	accelMu.RLock()
	defer accelMu.RUnlock()
	return accel
}

// UnregisterAccelerator removes and closes the active accelerator.
// Primarily useful in tests.
func UnregisterAccelerator() {
	accelMu.Lock()
	prev := accel
	accel = nil
	accelMu.Unlock()

	if prev != nil {
		prev.Close()
	}
}
