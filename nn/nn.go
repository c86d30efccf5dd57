// Copyright 2025 The ODesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gorgonia.org/tensor"

	"github.com/AspirinCode/ODesign/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter represents a learned parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Dense) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents an affine projection over the trailing feature axis.
type Linear = nn.Linear

// LinearOption customizes a Linear layer at construction time.
type LinearOption = nn.LinearOption

// NewLinear creates a new linear layer.
//
// Example:
//
//	layer := nn.NewLinear(128, 64)
//	zeroed := nn.NewLinear(128, 64, nn.WithInitializer(nn.ZeroInit))
func NewLinear(inFeatures, outFeatures int, opts ...LinearOption) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, opts...)
}

// WithInitializer sets the weight initialization strategy of a linear layer.
func WithInitializer(init Initializer) LinearOption {
	return nn.WithInitializer(init)
}

// WithoutBias disables the bias vector of a linear layer.
func WithoutBias() LinearOption {
	return nn.WithoutBias()
}

// Sequential

// Sequential represents a sequential container of modules.
type Sequential = nn.Sequential

// NewSequential creates a new sequential model.
//
// Example:
//
//	classifier := nn.NewSequential(
//	    nn.NewLinear(128, 128),
//	    nn.NewLinear(128, 5),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Initialization functions

// Initializer fills a freshly allocated weight tensor of the given shape.
type Initializer = nn.Initializer

// LeCunNormal initializes a tensor from N(0, 1/fan_in).
func LeCunNormal(fanIn, fanOut int, shape tensor.Shape) *tensor.Dense {
	return nn.LeCunNormal(fanIn, fanOut, shape)
}

// Xavier initializes a tensor using Xavier/Glorot uniform initialization.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Dense {
	return nn.Xavier(fanIn, fanOut, shape)
}

// ZeroInit initializes a tensor with zeros.
func ZeroInit(fanIn, fanOut int, shape tensor.Shape) *tensor.Dense {
	return nn.ZeroInit(fanIn, fanOut, shape)
}

// Zeros creates a float32 tensor filled with zeros.
func Zeros(shape ...int) *tensor.Dense {
	return nn.Zeros(shape...)
}

// Ones creates a float32 tensor filled with ones.
func Ones(shape ...int) *tensor.Dense {
	return nn.Ones(shape...)
}
