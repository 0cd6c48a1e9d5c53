//go:build !nogpu

package gpu

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/shadowbox"
)

// Accelerator computes blurred rounded-rect coverage masks on the GPU
// with a wgpu/hal compute shader. It implements shadowbox.Accelerator.
//
// The shader evaluates the blurred coverage analytically per pixel, so
// a mask costs one dispatch and one readback regardless of sigma. When
// no usable GPU is present the accelerator stays registered but
// reports no capabilities, and the software renderer keeps using its
// CPU pipeline.
type Accelerator struct {
	mu sync.Mutex

	logger *slog.Logger

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	gpuReady       bool
	externalDevice bool
}

var _ shadowbox.Accelerator = (*Accelerator)(nil)

func init() {
	if err := shadowbox.RegisterAccelerator(New()); err != nil {
		shadowbox.Logger().Warn("gpu accelerator unavailable", "err", err)
	}
}

// New creates an unregistered, uninitialized accelerator. Most users
// rely on the blank-import registration instead:
//
//	import _ "github.com/gogpu/shadowbox/gpu"
func New() *Accelerator {
	return &Accelerator{logger: shadowbox.Logger()}
}

// Name returns the accelerator name.
func (a *Accelerator) Name() string { return "wgpu-blur" }

// SetLogger replaces the accelerator's logger. Called by shadowbox on
// registration and on SetLogger.
func (a *Accelerator) SetLogger(l *slog.Logger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if l != nil {
		a.logger = l
	}
}

// CanAccelerate reports GPU availability for the operation.
func (a *Accelerator) CanAccelerate(op shadowbox.AcceleratedOp) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.gpuReady {
		return false
	}
	return op&(shadowbox.AccelBlurredRRectMask|shadowbox.AccelRRectMask) != 0
}

// Init probes for a GPU and builds the compute pipeline. A missing GPU
// is not an error: the accelerator degrades to reporting no
// capabilities so registration always succeeds.
func (a *Accelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initGPU(); err != nil {
		a.logger.Warn("gpu init failed, masks stay on CPU", "err", err)
	}
	return nil
}

// Close releases GPU resources.
func (a *Accelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyPipeline()
	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
			a.device = nil
		}
		if a.instance != nil {
			a.instance.Destroy()
			a.instance = nil
		}
	} else {
		// Shared resources belong to the host.
		a.device = nil
		a.instance = nil
	}
	a.queue = nil
	a.gpuReady = false
	a.externalDevice = false
}

// SetDeviceProvider switches the accelerator to a shared GPU device
// from a host application. The provider must expose HalDevice() any
// and HalQueue() any returning hal.Device and hal.Queue.
func (a *Accelerator) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.destroyPipeline()
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	a.device = device
	a.queue = queue
	a.externalDevice = true

	if err := a.createPipeline(); err != nil {
		a.gpuReady = false
		return fmt.Errorf("gpu: create pipeline with shared device: %w", err)
	}
	a.gpuReady = true
	a.logger.Info("switched to shared GPU device")
	return nil
}

// maskParams mirrors the Params uniform in blurred_rrect.wgsl.
type maskParams struct {
	X0, Y0, X1, Y1 float32
	Radius, Sigma  float32
	Width, Height  uint32
}

// BlurredRRectMask dispatches the mask shader and reads the coverage
// values back. Returns ErrFallbackToCPU when the GPU is unavailable.
func (a *Accelerator) BlurredRRectMask(width, height int, rect shadowbox.Rect, radius, sigma float64) ([]float32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.gpuReady {
		return nil, shadowbox.ErrFallbackToCPU
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gpu: invalid mask size %dx%d", width, height)
	}

	w, h := uint32(width), uint32(height)
	maskBufSize := uint64(width*height) * 4

	params := maskParams{
		X0: float32(rect.X0), Y0: float32(rect.Y0),
		X1: float32(rect.X1), Y1: float32(rect.Y1),
		Radius: float32(radius), Sigma: float32(sigma),
		Width: w, Height: h,
	}
	paramSize := uint64(unsafe.Sizeof(params))
	paramBytes := structToBytes(unsafe.Pointer(&params), unsafe.Sizeof(params)) //nolint:gosec // safe struct access

	uniformBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blur_params", Size: paramSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create uniform buffer: %w", err)
	}
	defer a.device.DestroyBuffer(uniformBuf)

	storageBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blur_mask", Size: maskBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create storage buffer: %w", err)
	}
	defer a.device.DestroyBuffer(storageBuf)

	stagingBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blur_staging", Size: maskBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create staging buffer: %w", err)
	}
	defer a.device.DestroyBuffer(stagingBuf)

	a.queue.WriteBuffer(uniformBuf, 0, paramBytes)

	bindGroup, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "blur_bind", Layout: a.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: paramSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: storageBuf.NativeHandle(), Offset: 0, Size: maskBufSize}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group: %w", err)
	}
	defer a.device.DestroyBindGroup(bindGroup)

	if err := a.dispatch(bindGroup, storageBuf, stagingBuf, w, h, maskBufSize); err != nil {
		return nil, err
	}

	// dispatch has waited for the submission, so the staging buffer is
	// safe to map.
	mapping, err := a.device.MapBuffer(stagingBuf, 0, maskBufSize)
	if err != nil {
		return nil, fmt.Errorf("gpu: map staging buffer: %w", err)
	}
	mask := maskFromMapping(mapping.Ptr, width*height)
	if err := a.device.UnmapBuffer(stagingBuf); err != nil {
		return nil, fmt.Errorf("gpu: unmap staging buffer: %w", err)
	}
	a.logger.Debug("gpu mask computed", "width", width, "height", height, "sigma", sigma)
	return mask, nil
}

func (a *Accelerator) dispatch(bindGroup hal.BindGroup, storageBuf, stagingBuf hal.Buffer, w, h uint32, maskBufSize uint64) error {
	encoder, err := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "blur_encoder"})
	if err != nil {
		return fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blur_mask"); err != nil {
		return fmt.Errorf("gpu: begin encoding: %w", err)
	}

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "blur_pass"})
	pass.SetPipeline(a.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Dispatch((w+7)/8, (h+7)/8, 1)
	pass.End()

	encoder.CopyBufferToBuffer(storageBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: maskBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer a.device.FreeCommandBuffer(cmdBuf)

	submission, err := a.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("gpu: submit: %w", err)
	}
	return waitForSubmission(a.queue, submission, 5*time.Second)
}

// waitForSubmission polls the queue until the given submission index
// completes. The HAL tracks completion internally; PollCompleted is the
// only synchronization point it exposes per submission.
func waitForSubmission(q hal.Queue, submission uint64, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for q.PollCompleted() < submission {
		if time.Now().After(deadline) {
			return fmt.Errorf("gpu: timeout waiting for submission %d", submission)
		}
		time.Sleep(100 * time.Microsecond)
	}
	return nil
}

// maskFromMapping copies n coverage values out of a mapped staging
// buffer. The mapping must stay valid for the duration of the call.
func maskFromMapping(ptr unsafe.Pointer, n int) []float32 {
	mask := make([]float32, n)
	copy(mask, unsafe.Slice((*float32)(ptr), n)) //nolint:gosec // bounds come from the buffer size
	return mask
}

func (a *Accelerator) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue
	if err := a.createPipeline(); err != nil {
		a.device.Destroy()
		a.device = nil
		a.queue = nil
		return fmt.Errorf("create pipeline: %w", err)
	}
	a.gpuReady = true
	a.logger.Info("gpu accelerator initialized", "adapter", selected.Info.Name)
	return nil
}

func (a *Accelerator) createPipeline() error {
	spirv, err := compileShaderToSPIRV(blurredRRectShaderSource)
	if err != nil {
		return err
	}
	shader, err := createShaderModule(a.device, "blurred_rrect", spirv)
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	a.shader = shader

	bindLayout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "blur_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	a.bindLayout = bindLayout

	pipeLayout, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "blur_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{a.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	a.pipeLayout = pipeLayout

	pipeline, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "blur_pipeline", Layout: a.pipeLayout,
		Compute: hal.ComputeState{Module: a.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	a.pipeline = pipeline
	return nil
}

func (a *Accelerator) destroyPipeline() {
	if a.device == nil {
		return
	}
	if a.pipeline != nil {
		a.device.DestroyComputePipeline(a.pipeline)
		a.pipeline = nil
	}
	if a.pipeLayout != nil {
		a.device.DestroyPipelineLayout(a.pipeLayout)
		a.pipeLayout = nil
	}
	if a.bindLayout != nil {
		a.device.DestroyBindGroupLayout(a.bindLayout)
		a.bindLayout = nil
	}
	if a.shader != nil {
		a.device.DestroyShaderModule(a.shader)
		a.shader = nil
	}
}

func structToBytes(ptr unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), size) //nolint:gosec // safe struct serialization
}
