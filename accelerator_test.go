package shadowbox

import (
	"errors"
	"log/slog"
	"testing"
)

type fakeAccelerator struct {
	name      string
	initErr   error
	inited    bool
	closed    bool
	gotLogger *slog.Logger
}

func (f *fakeAccelerator) Name() string { return f.name }
func (f *fakeAccelerator) Init() error {
	f.inited = true
	return f.initErr
}
func (f *fakeAccelerator) Close() { f.closed = true }
func (f *fakeAccelerator) CanAccelerate(op AcceleratedOp) bool {
	return op&AccelBlurredRRectMask != 0
}
func (f *fakeAccelerator) BlurredRRectMask(width, height int, rect Rect, radius, sigma float64) ([]float32, error) {
	return make([]float32, width*height), nil
}
func (f *fakeAccelerator) SetLogger(l *slog.Logger) { f.gotLogger = l }

func TestRegisterAccelerator(t *testing.T) {
	defer UnregisterAccelerator()

	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatalf("RegisterAccelerator: %v", err)
	}
	if !fake.inited {
		t.Error("Init was not called")
	}
	if got := ActiveAccelerator(); got != fake {
		t.Errorf("ActiveAccelerator() = %v, want the registered fake", got)
	}
	if fake.gotLogger == nil {
		t.Error("logger was not propagated on registration")
	}
}

func TestRegisterAcceleratorInitFailure(t *testing.T) {
	defer UnregisterAccelerator()

	wantErr := errors.New("no gpu")
	fake := &fakeAccelerator{name: "broken", initErr: wantErr}
	if err := RegisterAccelerator(fake); !errors.Is(err, wantErr) {
		t.Fatalf("RegisterAccelerator error = %v, want %v", err, wantErr)
	}
	if ActiveAccelerator() != nil {
		t.Error("failed accelerator should not be registered")
	}
}

func TestRegisterAcceleratorNil(t *testing.T) {
	if err := RegisterAccelerator(nil); err == nil {
		t.Error("RegisterAccelerator(nil) should fail")
	}
}

func TestRegisterAcceleratorReplacesAndCloses(t *testing.T) {
	defer UnregisterAccelerator()

	first := &fakeAccelerator{name: "first"}
	second := &fakeAccelerator{name: "second"}

	if err := RegisterAccelerator(first); err != nil {
		t.Fatal(err)
	}
	if err := RegisterAccelerator(second); err != nil {
		t.Fatal(err)
	}

	if !first.closed {
		t.Error("replaced accelerator was not closed")
	}
	if ActiveAccelerator() != second {
		t.Error("second accelerator should be active")
	}
}

func TestUnregisterAccelerator(t *testing.T) {
	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}

	UnregisterAccelerator()
	if ActiveAccelerator() != nil {
		t.Error("accelerator still active after unregister")
	}
	if !fake.closed {
		t.Error("unregistered accelerator was not closed")
	}

	// Unregistering twice is harmless.
	UnregisterAccelerator()
}

func TestSetLoggerPropagatesToAccelerator(t *testing.T) {
	defer UnregisterAccelerator()
	defer SetLogger(nil)

	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}

	l := slog.New(nopHandler{})
	SetLogger(l)
	if fake.gotLogger != l {
		t.Error("SetLogger did not propagate to the accelerator")
	}
}
