//go:build gpu

package raster

// SDF circles and rounded rectangles plus tiled path coverage. When no
// adapter is available the registration is skipped and gg stays on the CPU.
import _ "github.com/gogpu/gg/gpu"
