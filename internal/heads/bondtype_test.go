package heads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/AspirinCode/ODesign/chem"
)

// TestBondTypeHead_LeadingAxis checks that a batch-less input gains a
// leading singleton axis.
func TestBondTypeHead_LeadingAxis(t *testing.T) {
	head := NewBondTypeHead(4, 6, 5)

	z := tensor.New(tensor.Of(tensor.Float32), tensor.WithShape(3, 3, 4))

	out, err := head.Forward(z)
	require.NoError(t, err)
	assert.True(t, out.Shape().Eq(tensor.Shape{1, 3, 3, 5}), "shape = %v", out.Shape())
}

// TestBondTypeHead_BatchedInput checks that an explicit batch axis is kept
// under the inserted one.
func TestBondTypeHead_BatchedInput(t *testing.T) {
	head := NewBondTypeHead(4, 6, 5)

	z := randomPairEmbedding(2, 3, 4)

	out, err := head.Forward(z)
	require.NoError(t, err)
	assert.True(t, out.Shape().Eq(tensor.Shape{1, 2, 3, 3, 5}), "shape = %v", out.Shape())
}

// TestBondTypeHead_TwoStages checks the classifier is exactly two linear
// stages with four parameters in total.
func TestBondTypeHead_TwoStages(t *testing.T) {
	head := NewBondTypeHead(8, 16, chem.NumBondTypes)

	params := head.Parameters()
	require.Len(t, params, 4)
	assert.True(t, params[0].Tensor().Shape().Eq(tensor.Shape{8, 16}), "stage 1 weight")
	assert.True(t, params[1].Tensor().Shape().Eq(tensor.Shape{16}), "stage 1 bias")
	assert.True(t, params[2].Tensor().Shape().Eq(tensor.Shape{16, chem.NumBondTypes}), "stage 2 weight")
	assert.True(t, params[3].Tensor().Shape().Eq(tensor.Shape{chem.NumBondTypes}), "stage 2 bias")

	assert.Equal(t, 8, head.InDim())
	assert.Equal(t, 16, head.HiddenDim())
	assert.Equal(t, chem.NumBondTypes, head.NumClasses())
}

// TestBondTypeHead_Determinism checks bit-identical repeated outputs.
func TestBondTypeHead_Determinism(t *testing.T) {
	head := NewBondTypeHead(4, 6, 5)
	randomizeWeights(head.Parameters())

	z := randomPairEmbedding(1, 4, 4)

	first, err := head.Forward(z)
	require.NoError(t, err)
	second, err := head.Forward(z)
	require.NoError(t, err)

	assert.Equal(t, first.Data().([]float32), second.Data().([]float32))
}

// TestBondTypeHead_BadInput checks the channel-width error.
func TestBondTypeHead_BadInput(t *testing.T) {
	head := NewBondTypeHead(4, 6, 5)

	z := tensor.New(tensor.Of(tensor.Float32), tensor.WithShape(3, 3, 7))

	_, err := head.Forward(z)
	assert.Error(t, err)
}

// TestNewBondTypeHead_Panics checks constructor validation.
func TestNewBondTypeHead_Panics(t *testing.T) {
	assert.Panics(t, func() { NewBondTypeHead(0, 6, 5) })
	assert.Panics(t, func() { NewBondTypeHead(4, 0, 5) })
	assert.Panics(t, func() { NewBondTypeHead(4, 6, 0) })
}
