package nn

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Linear implements an affine projection over the trailing feature axis.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [..., in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [..., out_features]
//
// Leading axes are arbitrary; the projection is applied pointwise over them.
// Weights default to LeCun-normal initialization, biases to zeros.
//
// Example:
//
//	layer := nn.NewLinear(128, 64)
//	output, err := layer.Forward(z) // [..., 128] -> [..., 64]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features], nil when disabled
}

// LinearOption customizes a Linear layer at construction time.
type LinearOption func(*linearOptions)

type linearOptions struct {
	init Initializer
	bias bool
}

// WithInitializer sets the weight initialization strategy.
//
// Example:
//
//	layer := nn.NewLinear(128, 64, nn.WithInitializer(nn.ZeroInit))
func WithInitializer(init Initializer) LinearOption {
	return func(o *linearOptions) {
		o.init = init
	}
}

// WithoutBias disables the bias vector. The layer then computes y = x @ W
// and owns a single parameter.
func WithoutBias() LinearOption {
	return func(o *linearOptions) {
		o.bias = false
	}
}

// NewLinear creates a new Linear layer.
//
// Weights are initialized with LeCunNormal unless overridden via
// WithInitializer. Biases are initialized to zeros.
//
// Panics if inFeatures or outFeatures is not positive.
func NewLinear(inFeatures, outFeatures int, opts ...LinearOption) *Linear {
	if inFeatures <= 0 {
		panic(fmt.Sprintf("Linear: inFeatures must be positive, got %d", inFeatures))
	}
	if outFeatures <= 0 {
		panic(fmt.Sprintf("Linear: outFeatures must be positive, got %d", outFeatures))
	}

	options := linearOptions{
		init: LeCunNormal,
		bias: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	weightShape := tensor.Shape{inFeatures, outFeatures}
	weight := NewParameter("weight", options.init(inFeatures, outFeatures, weightShape))

	var bias *Parameter
	if options.bias {
		bias = NewParameter("bias", Zeros(outFeatures))
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}
}

// Forward computes the output of the linear layer.
//
// Input shape: [..., in_features]
// Output shape: [..., out_features]
//
// The input is flattened to [rows, in_features] for the matrix product and
// the leading axes are restored on the result. The input tensor itself is
// never mutated.
func (l *Linear) Forward(input *tensor.Dense) (*tensor.Dense, error) {
	shape := input.Shape()
	if shape[len(shape)-1] != l.inFeatures {
		return nil, fmt.Errorf("Linear.Forward: expected input with %d features, got %d (shape %v)",
			l.inFeatures, shape[len(shape)-1], shape)
	}

	rows := 1
	for _, d := range shape[:len(shape)-1] {
		rows *= d
	}

	flat := input.Clone().(*tensor.Dense)
	if err := flat.Reshape(rows, l.inFeatures); err != nil {
		return nil, fmt.Errorf("Linear.Forward: %w", err)
	}

	// [rows, in_features] @ [in_features, out_features] = [rows, out_features]
	prod, err := tensor.MatMul(flat, l.weight.Tensor())
	if err != nil {
		return nil, fmt.Errorf("Linear.Forward: %w", err)
	}
	output := prod.(*tensor.Dense)

	if l.bias != nil {
		outData := output.Data().([]float32)
		biasData := l.bias.Tensor().Data().([]float32)
		for i := range outData {
			outData[i] += biasData[i%l.outFeatures]
		}
	}

	outShape := make(tensor.Shape, 0, len(shape))
	outShape = append(outShape, shape[:len(shape)-1]...)
	outShape = append(outShape, l.outFeatures)
	if err := output.Reshape(outShape...); err != nil {
		return nil, fmt.Errorf("Linear.Forward: %w", err)
	}

	return output, nil
}

// Parameters returns the learned parameters of this layer.
//
// Returns [weight, bias] if bias is present, otherwise [weight].
func (l *Linear) Parameters() []*Parameter {
	if l.bias != nil {
		return []*Parameter{l.weight, l.bias}
	}
	return []*Parameter{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter, or nil if the layer has no bias.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
