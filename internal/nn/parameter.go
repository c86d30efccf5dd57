package nn

import (
	"gorgonia.org/tensor"
)

// Parameter represents a learned parameter in a neural network.
//
// Parameters are tensors owned by a module, created at construction time and
// never resized afterward. They typically represent weights and biases of
// layers.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
type Parameter struct {
	name   string        // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Dense // The parameter tensor
	grad   *tensor.Dense // Gradient tensor, if one has been attached
}

// NewParameter creates a new learned parameter.
//
// The parameter tensor should be initialized before creating the Parameter.
func NewParameter(name string, t *tensor.Dense) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Dense {
	return p.tensor
}

// Grad returns the gradient tensor, or nil if none has been attached.
func (p *Parameter) Grad() *tensor.Dense {
	return p.grad
}

// SetGrad attaches a gradient tensor. This is a hook for an external
// training stage; nothing in this module computes gradients itself.
func (p *Parameter) SetGrad(grad *tensor.Dense) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
