package heads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/AspirinCode/ODesign/chem"
)

// TestPairwiseHead_Defaults checks that zero config fields take the model
// defaults.
func TestPairwiseHead_Defaults(t *testing.T) {
	head := NewPairwiseHead(PairwiseConfig{BondReconstruction: true})

	config := head.Config()
	assert.Equal(t, DefaultPairDim, config.PairDim)
	assert.Equal(t, DefaultDistogramBins, config.NumBins)
	assert.Equal(t, chem.NumBondTypes, config.NumBondTypes)
	assert.Equal(t, DefaultBondHidden, config.BondHidden)

	assert.Equal(t, DefaultPairDim, head.Distogram().PairDim())
	assert.Equal(t, DefaultDistogramBins, head.Distogram().NumBins())
	require.NotNil(t, head.BondType())
	assert.Equal(t, chem.NumBondTypes, head.BondType().NumClasses())
}

// TestPairwiseHead_WithoutBondReconstruction checks the structural variant:
// no bond sub-head, no bond parameters, absent bond field on every call.
func TestPairwiseHead_WithoutBondReconstruction(t *testing.T) {
	head := NewPairwiseHead(PairwiseConfig{PairDim: 4, NumBins: 2})

	assert.False(t, head.BondReconstruction())
	assert.Nil(t, head.BondType())

	// Only the distogram linear's weight and bias exist.
	require.Len(t, head.Parameters(), 2)

	out, err := head.Forward(&PairFormerOutput{Z: randomPairEmbedding(1, 3, 4)})
	require.NoError(t, err)

	assert.False(t, out.HasBondTypes())
	assert.Nil(t, out.BondTypeLogits)
	require.NotNil(t, out.Distogram)
	assert.True(t, out.Distogram.Shape().Eq(tensor.Shape{1, 3, 3, 2}))
}

// TestPairwiseHead_WithBondReconstruction checks that both logit tensors are
// produced from the same embedding.
func TestPairwiseHead_WithBondReconstruction(t *testing.T) {
	head := NewPairwiseHead(PairwiseConfig{
		PairDim:            4,
		NumBins:            2,
		NumBondTypes:       5,
		BondHidden:         6,
		BondReconstruction: true,
	})

	assert.True(t, head.BondReconstruction())

	// Distogram weight+bias plus two classifier stages.
	require.Len(t, head.Parameters(), 6)

	out, err := head.Forward(&PairFormerOutput{Z: randomPairEmbedding(1, 3, 4)})
	require.NoError(t, err)

	assert.True(t, out.HasBondTypes())
	assert.True(t, out.Distogram.Shape().Eq(tensor.Shape{1, 3, 3, 2}), "distogram shape = %v", out.Distogram.Shape())
	assert.True(t, out.BondTypeLogits.Shape().Eq(tensor.Shape{1, 1, 3, 3, 5}), "bond shape = %v", out.BondTypeLogits.Shape())
}

// TestPairwiseHead_Determinism checks bit-identical repeated outputs.
func TestPairwiseHead_Determinism(t *testing.T) {
	head := NewPairwiseHead(PairwiseConfig{
		PairDim:            4,
		NumBins:            2,
		BondReconstruction: true,
	})
	randomizeWeights(head.Parameters())

	input := &PairFormerOutput{Z: randomPairEmbedding(1, 3, 4)}

	first, err := head.Forward(input)
	require.NoError(t, err)
	second, err := head.Forward(input)
	require.NoError(t, err)

	assert.Equal(t, first.Distogram.Data().([]float32), second.Distogram.Data().([]float32))
	assert.Equal(t, first.BondTypeLogits.Data().([]float32), second.BondTypeLogits.Data().([]float32))
}

// TestPairwiseHead_ErrorPropagation checks that a sub-head shape error
// surfaces from Forward.
func TestPairwiseHead_ErrorPropagation(t *testing.T) {
	head := NewPairwiseHead(PairwiseConfig{PairDim: 4, NumBins: 2})

	z := tensor.New(tensor.Of(tensor.Float32), tensor.WithShape(1, 3, 3, 7))
	_, err := head.Forward(&PairFormerOutput{Z: z})
	assert.Error(t, err)
}

// TestNewPairwiseHead_Panics checks constructor validation.
func TestNewPairwiseHead_Panics(t *testing.T) {
	assert.Panics(t, func() { NewPairwiseHead(PairwiseConfig{PairDim: -1}) })
	assert.Panics(t, func() { NewPairwiseHead(PairwiseConfig{NumBins: -64}) })
}
