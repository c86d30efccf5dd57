// Copyright 2025 The ODesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package heads

import (
	"gorgonia.org/tensor"

	"github.com/AspirinCode/ODesign/internal/heads"
)

// Model defaults.
const (
	DefaultPairDim       = heads.DefaultPairDim
	DefaultDistogramBins = heads.DefaultDistogramBins
	DefaultBondHidden    = heads.DefaultBondHidden
)

// Default distogram bin range in angstroms.
const (
	FirstBreak = heads.FirstBreak
	LastBreak  = heads.LastBreak
)

// PairFormerOutput is the slice of the upstream encoder output consumed by
// the pairwise heads: the pair embedding Z of shape [*, N_token, N_token, c_z].
type PairFormerOutput = heads.PairFormerOutput

// PairwiseOutput aggregates the head outputs of one forward pass.
type PairwiseOutput = heads.PairwiseOutput

// DistogramHead computes symmetrized distance-bin logits over token pairs.
type DistogramHead = heads.DistogramHead

// NewDistogramHead creates a distogram head projecting pairDim channels to
// numBins distance classes. Weights start at zero.
//
// Example:
//
//	head := heads.NewDistogramHead(128, 64)
//	logits, err := head.Forward(z) // [*, N, N, 128] -> [*, N, N, 64]
func NewDistogramHead(pairDim, numBins int) *DistogramHead {
	return heads.NewDistogramHead(pairDim, numBins)
}

// BondTypeHead classifies each token pair into a bond-type category.
type BondTypeHead = heads.BondTypeHead

// NewBondTypeHead creates a bond-type head with a two-stage linear
// classifier inDim -> hiddenDim -> numClasses.
//
// Example:
//
//	head := heads.NewBondTypeHead(128, 128, chem.NumBondTypes)
//	logits, err := head.Forward(z) // [*, N, N, 128] -> [1, *, N, N, classes]
func NewBondTypeHead(inDim, hiddenDim, numClasses int) *BondTypeHead {
	return heads.NewBondTypeHead(inDim, hiddenDim, numClasses)
}

// PairwiseHead orchestrates the pairwise output heads over one shared pair
// embedding.
type PairwiseHead = heads.PairwiseHead

// PairwiseConfig defines the configuration for a PairwiseHead. Zero-valued
// dimension fields take the model defaults.
type PairwiseConfig = heads.PairwiseConfig

// NewPairwiseHead creates a pairwise head from the given configuration.
//
// Example:
//
//	head := heads.NewPairwiseHead(heads.PairwiseConfig{
//	    BondReconstruction: true,
//	})
//	out, err := head.Forward(&heads.PairFormerOutput{Z: z})
func NewPairwiseHead(config PairwiseConfig) *PairwiseHead {
	return heads.NewPairwiseHead(config)
}

// Distance readouts

// DistogramBins maps distance-bin indices to physical distances.
type DistogramBins = heads.DistogramBins

// NewDistogramBins creates a bin table with numBins bins spanning
// [firstBreak, lastBreak] angstroms.
func NewDistogramBins(firstBreak, lastBreak float64, numBins int) *DistogramBins {
	return heads.NewDistogramBins(firstBreak, lastBreak, numBins)
}

// DefaultDistogramBins64 creates the default 64-bin table over
// [FirstBreak, LastBreak].
func DefaultDistogramBins64() *DistogramBins {
	return heads.DefaultDistogramBins64()
}

// Softmax converts logits to probabilities over the trailing class axis.
func Softmax(logits *tensor.Dense) *tensor.Dense {
	return heads.Softmax(logits)
}
