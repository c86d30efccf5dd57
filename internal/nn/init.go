package nn

import (
	"math"
	"math/rand"

	"gorgonia.org/tensor"
)

// Initializer fills a freshly allocated weight tensor of the given shape.
// fanIn and fanOut are the input and output feature widths of the layer the
// weight belongs to.
type Initializer func(fanIn, fanOut int, shape tensor.Shape) *tensor.Dense

// LeCunNormal initializes weights from N(0, 1/fan_in).
//
// This is the default weight initialization for linear layers.
func LeCunNormal(fanIn, _ int, shape tensor.Shape) *tensor.Dense {
	std := math.Sqrt(1.0 / float64(fanIn))

	data := make([]float32, shape.TotalSize())
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = float32(rand.NormFloat64() * std)
	}

	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data))
}

// Xavier (Glorot) initializes weights from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	data := make([]float32, shape.TotalSize())
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound)
	}

	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data))
}

// ZeroInit initializes weights to zero.
//
// A layer initialized this way starts as a neutral predictor: its output is
// identically zero regardless of input until training moves the weights.
func ZeroInit(_, _ int, shape tensor.Shape) *tensor.Dense {
	return Zeros(shape...)
}

// Zeros creates a float32 tensor filled with zeros.
//
// This is also the bias initialization for linear layers.
func Zeros(shape ...int) *tensor.Dense {
	return tensor.New(tensor.Of(tensor.Float32), tensor.WithShape(shape...))
}

// Ones creates a float32 tensor filled with ones.
func Ones(shape ...int) *tensor.Dense {
	size := tensor.Shape(shape).TotalSize()
	data := make([]float32, size)
	for i := range data {
		data[i] = 1
	}
	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data))
}
