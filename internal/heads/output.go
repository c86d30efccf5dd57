package heads

import (
	"gorgonia.org/tensor"
)

// PairFormerOutput is the slice of the upstream encoder output consumed by
// the pairwise heads.
//
// Z is the pair embedding with shape [*, N_token, N_token, c_z]. Its
// indexing is symmetric but its values need not be; the heads never rely on
// value symmetry of the input.
type PairFormerOutput struct {
	Z *tensor.Dense
}

// PairwiseOutput aggregates the head outputs of one forward pass.
//
// Distogram holds distance-bin logits with shape [*, N_token, N_token,
// no_bins]. BondTypeLogits holds bond-class logits with shape
// [1, *, N_token, N_token, no_bond_types], and is nil when the head was
// constructed without bond reconstruction. The aggregate is created once per
// forward invocation and never mutated afterward.
type PairwiseOutput struct {
	Distogram      *tensor.Dense
	BondTypeLogits *tensor.Dense
}

// HasBondTypes reports whether bond-type logits are present.
func (o *PairwiseOutput) HasBondTypes() bool {
	return o.BondTypeLogits != nil
}
