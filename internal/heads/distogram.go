// Package heads implements the pairwise output heads of the ODesign model:
// small learned projections that map the pair embedding produced by the
// upstream pairformer encoder into task-specific prediction logits.
//
// Three heads are provided:
//   - DistogramHead: inter-residue distance-bin logits, symmetric over the
//     two token axes
//   - BondTypeHead: bond-class logits per token pair
//   - PairwiseHead: composite that owns a DistogramHead and, optionally, a
//     BondTypeHead
//
// All heads are pure functions of (parameters, input): no internal state
// changes across calls, and repeated calls with identical input produce
// identical output.
package heads

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/AspirinCode/ODesign/internal/nn"
)

// Model defaults.
const (
	// DefaultPairDim is the default pair-embedding width c_z.
	DefaultPairDim = 128
	// DefaultDistogramBins is the default number of distance bins.
	DefaultDistogramBins = 64
	// DefaultBondHidden is the default hidden width of the bond-type
	// classifier.
	DefaultBondHidden = 128
)

// DistogramHead computes distance-distribution logits over token pairs.
//
// A single linear map projects the pair embedding from c_z channels to
// no_bins distance classes, and the result is symmetrized by adding its own
// transpose over the two token axes:
//
//	logits = linear(z)
//	output = logits + transpose(logits, i<->j)
//
// The sum of a tensor and its transpose is symmetric by construction, so
// output[..., i, j, :] == output[..., j, i, :] holds for every input,
// whether or not z itself is symmetric. Diagonal entries double; callers
// that care about self-pairs account for that downstream.
//
// Weights are initialized to zero, so a freshly constructed head is a
// neutral predictor: its output is identically zero for any input.
type DistogramHead struct {
	pairDim int
	numBins int
	linear  *nn.Linear
}

// NewDistogramHead creates a distogram head projecting pairDim channels to
// numBins distance classes.
//
// Panics if pairDim or numBins is not positive.
func NewDistogramHead(pairDim, numBins int) *DistogramHead {
	if pairDim <= 0 {
		panic(fmt.Sprintf("DistogramHead: pairDim must be positive, got %d", pairDim))
	}
	if numBins <= 0 {
		panic(fmt.Sprintf("DistogramHead: numBins must be positive, got %d", numBins))
	}

	return &DistogramHead{
		pairDim: pairDim,
		numBins: numBins,
		linear:  nn.NewLinear(pairDim, numBins, nn.WithInitializer(nn.ZeroInit)),
	}
}

// Forward computes symmetrized distance-bin logits.
//
// Input shape: [*, N_token, N_token, c_z]
// Output shape: [*, N_token, N_token, no_bins]
func (h *DistogramHead) Forward(z *tensor.Dense) (*tensor.Dense, error) {
	shape := z.Shape()
	if shape.Dims() < 3 {
		return nil, fmt.Errorf("DistogramHead.Forward: expected input of shape (..., N, N, %d), got %v",
			h.pairDim, shape)
	}
	n := len(shape)
	if shape[n-3] != shape[n-2] {
		return nil, fmt.Errorf("DistogramHead.Forward: token axes must agree, got %v", shape)
	}
	if shape[n-1] != h.pairDim {
		return nil, fmt.Errorf("DistogramHead.Forward: expected input with %d channels, got %d (shape %v)",
			h.pairDim, shape[n-1], shape)
	}

	logits, err := h.linear.Forward(z)
	if err != nil {
		return nil, err
	}

	// Swap the two token axes; the class axis stays last.
	perm := make([]int, len(logits.Shape()))
	for i := range perm {
		perm[i] = i
	}
	perm[len(perm)-3], perm[len(perm)-2] = perm[len(perm)-2], perm[len(perm)-3]

	flipped, err := tensor.Transpose(logits, perm...)
	if err != nil {
		return nil, fmt.Errorf("DistogramHead.Forward: %w", err)
	}

	sym, err := tensor.Add(logits, flipped)
	if err != nil {
		return nil, fmt.Errorf("DistogramHead.Forward: %w", err)
	}

	return sym.(*tensor.Dense), nil
}

// Parameters returns the learned parameters of the head.
func (h *DistogramHead) Parameters() []*nn.Parameter {
	return h.linear.Parameters()
}

// PairDim returns the expected pair-embedding width c_z.
func (h *DistogramHead) PairDim() int {
	return h.pairDim
}

// NumBins returns the number of distance bins.
func (h *DistogramHead) NumBins() int {
	return h.numBins
}
