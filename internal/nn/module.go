// Package nn implements the neural network primitives used by the ODesign
// prediction heads.
//
// This package provides the model-definition vocabulary:
//   - Module interface: base interface for all NN components
//   - Parameter: learned parameters
//   - Linear: affine projection over the trailing feature axis
//   - Sequential: container for chaining modules
//   - Initializers: LeCunNormal, Xavier, ZeroInit
//
// Design inspired by PyTorch's nn.Module. Tensors are dense float32
// gorgonia tensors; any device parallelism is the tensor library's concern.
package nn

import (
	"gorgonia.org/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: compute output from input
//   - Parameters: return all learned parameters
//
// Modules can be composed to build larger heads:
//
//	classifier := nn.NewSequential(
//	    nn.NewLinear(128, 128),
//	    nn.NewLinear(128, 5),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor must have the appropriate trailing feature width for
	// this module. Shape mismatches surface as an immediate error.
	Forward(input *tensor.Dense) (*tensor.Dense, error)

	// Parameters returns all learned parameters of this module, including
	// nested module parameters. Modules without parameters return an empty
	// slice.
	Parameters() []*Parameter
}
