//go:build wdraw_gpu

package retained

// Registers gg's wgpu accelerator so gg-backed targets render on the GPU
// when an adapter is available. gg falls back to the CPU otherwise.
import _ "github.com/gogpu/gg/gpu"
