package heads

import (
	"fmt"

	"github.com/AspirinCode/ODesign/chem"
	"github.com/AspirinCode/ODesign/internal/nn"
)

// PairwiseConfig defines the configuration for a PairwiseHead.
//
// Zero-valued dimension fields take the model defaults.
type PairwiseConfig struct {
	PairDim            int  // c_z: pair-embedding width (default 128)
	NumBins            int  // Number of distance bins (default 64)
	NumBondTypes       int  // Number of bond categories (default chem.NumBondTypes)
	BondHidden         int  // Hidden width of the bond classifier (default 128)
	BondReconstruction bool // Whether to allocate the bond-type sub-head
}

// PairwiseHead orchestrates the pairwise output heads over one shared pair
// embedding.
//
// It always owns a DistogramHead. The BondTypeHead exists only when the
// head was constructed with BondReconstruction set: the toggle is structural,
// decided at construction time, and when it is off no bond-type parameters
// are allocated at all and every output has an absent bond-type field.
type PairwiseHead struct {
	config    PairwiseConfig
	distogram *DistogramHead
	bondType  *BondTypeHead // nil unless BondReconstruction
}

// NewPairwiseHead creates a pairwise head from the given configuration.
//
// Panics if any dimension field is negative.
func NewPairwiseHead(config PairwiseConfig) *PairwiseHead {
	if config.PairDim < 0 || config.NumBins < 0 || config.NumBondTypes < 0 || config.BondHidden < 0 {
		panic(fmt.Sprintf("PairwiseHead: dimensions must not be negative, got %+v", config))
	}
	if config.PairDim == 0 {
		config.PairDim = DefaultPairDim
	}
	if config.NumBins == 0 {
		config.NumBins = DefaultDistogramBins
	}
	if config.NumBondTypes == 0 {
		config.NumBondTypes = chem.NumBondTypes
	}
	if config.BondHidden == 0 {
		config.BondHidden = DefaultBondHidden
	}

	head := &PairwiseHead{
		config:    config,
		distogram: NewDistogramHead(config.PairDim, config.NumBins),
	}
	if config.BondReconstruction {
		head.bondType = NewBondTypeHead(config.PairDim, config.BondHidden, config.NumBondTypes)
	}
	return head
}

// Forward fans the pair embedding out to the sub-heads and collects their
// logits.
//
// The distogram is always computed. Bond-type logits are computed from the
// same embedding when bond reconstruction is enabled; otherwise the
// BondTypeLogits field of the result is nil.
func (h *PairwiseHead) Forward(input *PairFormerOutput) (*PairwiseOutput, error) {
	distogram, err := h.distogram.Forward(input.Z)
	if err != nil {
		return nil, err
	}

	output := &PairwiseOutput{Distogram: distogram}

	if h.bondType != nil {
		bondLogits, err := h.bondType.Forward(input.Z)
		if err != nil {
			return nil, err
		}
		output.BondTypeLogits = bondLogits
	}

	return output, nil
}

// Parameters returns the learned parameters of all allocated sub-heads.
func (h *PairwiseHead) Parameters() []*nn.Parameter {
	params := h.distogram.Parameters()
	if h.bondType != nil {
		params = append(params, h.bondType.Parameters()...)
	}
	return params
}

// Config returns the effective configuration, with defaults filled in.
func (h *PairwiseHead) Config() PairwiseConfig {
	return h.config
}

// Distogram returns the distogram sub-head.
func (h *PairwiseHead) Distogram() *DistogramHead {
	return h.distogram
}

// BondType returns the bond-type sub-head, or nil when bond reconstruction
// is disabled.
func (h *PairwiseHead) BondType() *BondTypeHead {
	return h.bondType
}

// BondReconstruction reports whether the bond-type sub-head is allocated.
func (h *PairwiseHead) BondReconstruction() bool {
	return h.bondType != nil
}
