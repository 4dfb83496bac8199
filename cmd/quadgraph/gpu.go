//go:build gpu

package main

// Built with -tags gpu, shapes and paths are rasterized on the GPU when a
// device is available. Rendering falls back to the CPU otherwise.
import _ "github.com/gogpu/gg/gpu"
