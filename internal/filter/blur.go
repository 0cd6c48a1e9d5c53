package filter

import "sync"

// BlurMask applies a separable Gaussian blur to a single-channel
// coverage mask in place. Values are treated as [0, 1] coverage; the
// blur never pushes them outside that range because the kernel is
// normalized and non-negative.
//
// The two-pass separable form runs each row then each column against
// the 1D kernel, O(w*h*k) instead of O(w*h*k²). Pixels sampled beyond
// the mask edge read as zero coverage, which is the correct boundary
// condition for a shape mask surrounded by emptiness.
//
// Sigma <= 0 is the identity and returns immediately.
func BlurMask(mask []float32, width, height int, sigma float64) {
	if sigma <= 0 || width <= 0 || height <= 0 {
		return
	}
	if len(mask) < width*height {
		return
	}

	kernel := CachedGaussianKernel(sigma)
	if len(kernel) == 1 {
		return
	}
	half := len(kernel) / 2

	tmp := getMaskBuffer(width * height)
	defer putMaskBuffer(tmp)

	// Horizontal pass: mask -> tmp.
	for y := 0; y < height; y++ {
		row := mask[y*width : (y+1)*width]
		out := tmp[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var acc float32
			for k, w := range kernel {
				sx := x + k - half
				if sx < 0 || sx >= width {
					continue
				}
				acc += row[sx] * w
			}
			out[x] = acc
		}
	}

	// Vertical pass: tmp -> mask.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			var acc float32
			for k, w := range kernel {
				sy := y + k - half
				if sy < 0 || sy >= height {
					continue
				}
				acc += tmp[sy*width+x] * w
			}
			mask[y*width+x] = acc
		}
	}
}

type maskBuffer struct {
	data []float32
}

var maskBufferPool = sync.Pool{
	New: func() interface{} {
		return &maskBuffer{data: make([]float32, 1024*1024)}
	},
}

func getMaskBuffer(size int) []float32 {
	wrapper := maskBufferPool.Get().(*maskBuffer)
	if len(wrapper.data) < size {
		maskBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	buf := wrapper.data[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func putMaskBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		maskBufferPool.Put(&maskBuffer{data: buf[:cap(buf)]})
	}
}
