package raster

import "github.com/gogpu/gg"

// AcceleratorName returns the name of the GPU accelerator gg renders
// through, or "" when drawing stays on the CPU. An accelerator is present
// only in binaries built with the gpu tag.
func AcceleratorName() string {
	a := gg.Accelerator()
	if a == nil {
		return ""
	}
	return a.Name()
}

// CloseAccelerator releases the GPU resources held by the accelerator.
// It is a no-op when none is registered.
func CloseAccelerator() {
	gg.CloseAccelerator()
}
