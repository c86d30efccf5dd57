package heads

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/AspirinCode/ODesign/internal/nn"
)

// BondTypeHead classifies each token pair into a bond-type category.
//
// The classifier is two chained linear maps, c_in -> c_hidden ->
// no_bond_types, with no activation between the stages. Collapsing the two
// stages into one would change the parameter count and initialization
// statistics, so they stay separate.
//
// Forward inserts a leading singleton batch axis onto the input before
// classifying, so callers that omit an explicit batch dimension get a
// batch-of-one output. The leading axis is retained on the output.
type BondTypeHead struct {
	inDim      int
	hiddenDim  int
	numClasses int
	classifier *nn.Sequential
}

// NewBondTypeHead creates a bond-type head.
//
// inDim is the pair-embedding width, hiddenDim the classifier hidden width,
// and numClasses the number of bond categories (typically
// chem.NumBondTypes).
//
// Panics if any dimension is not positive.
func NewBondTypeHead(inDim, hiddenDim, numClasses int) *BondTypeHead {
	if inDim <= 0 {
		panic(fmt.Sprintf("BondTypeHead: inDim must be positive, got %d", inDim))
	}
	if hiddenDim <= 0 {
		panic(fmt.Sprintf("BondTypeHead: hiddenDim must be positive, got %d", hiddenDim))
	}
	if numClasses <= 0 {
		panic(fmt.Sprintf("BondTypeHead: numClasses must be positive, got %d", numClasses))
	}

	return &BondTypeHead{
		inDim:      inDim,
		hiddenDim:  hiddenDim,
		numClasses: numClasses,
		classifier: nn.NewSequential(
			nn.NewLinear(inDim, hiddenDim),
			nn.NewLinear(hiddenDim, numClasses),
		),
	}
}

// Forward computes bond-class logits.
//
// Input shape: [*, N_token, N_token, c_in]
// Output shape: [1, *, N_token, N_token, no_bond_types]
func (h *BondTypeHead) Forward(z *tensor.Dense) (*tensor.Dense, error) {
	shape := z.Shape()
	if shape[len(shape)-1] != h.inDim {
		return nil, fmt.Errorf("BondTypeHead.Forward: expected input with %d channels, got %d (shape %v)",
			h.inDim, shape[len(shape)-1], shape)
	}

	batched := z.Clone().(*tensor.Dense)
	withBatch := make(tensor.Shape, 0, len(shape)+1)
	withBatch = append(withBatch, 1)
	withBatch = append(withBatch, shape...)
	if err := batched.Reshape(withBatch...); err != nil {
		return nil, fmt.Errorf("BondTypeHead.Forward: %w", err)
	}

	return h.classifier.Forward(batched)
}

// Parameters returns the learned parameters of both classifier stages.
func (h *BondTypeHead) Parameters() []*nn.Parameter {
	return h.classifier.Parameters()
}

// InDim returns the expected pair-embedding width.
func (h *BondTypeHead) InDim() int {
	return h.inDim
}

// HiddenDim returns the classifier hidden width.
func (h *BondTypeHead) HiddenDim() int {
	return h.hiddenDim
}

// NumClasses returns the number of bond categories.
func (h *BondTypeHead) NumClasses() int {
	return h.numClasses
}
