package heads

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"
)

// Default distogram bin range in angstroms. The first bin covers everything
// below FirstBreak and the last bin everything above LastBreak.
const (
	FirstBreak = 2.3125
	LastBreak  = 21.6875
)

// DistogramBins maps distance-bin indices to physical distances.
//
// numBins bins are delimited by numBins-1 evenly spaced breaks: bin 0 is
// (-inf, breaks[0]], bin k is (breaks[k-1], breaks[k]], and the last bin is
// open-ended. Centers are bin midpoints, with the two open bins assigned
// half-step extrapolated centers.
type DistogramBins struct {
	breaks  []float64
	centers []float64
}

// NewDistogramBins creates a bin table with numBins bins spanning
// [firstBreak, lastBreak].
//
// Panics if numBins < 3 or lastBreak <= firstBreak.
func NewDistogramBins(firstBreak, lastBreak float64, numBins int) *DistogramBins {
	if numBins < 3 {
		panic(fmt.Sprintf("DistogramBins: need at least 3 bins, got %d", numBins))
	}
	if lastBreak <= firstBreak {
		panic(fmt.Sprintf("DistogramBins: breaks must increase, got [%g, %g]", firstBreak, lastBreak))
	}

	breaks := floats.Span(make([]float64, numBins-1), firstBreak, lastBreak)
	step := breaks[1] - breaks[0]

	centers := make([]float64, numBins)
	centers[0] = breaks[0] - step/2
	for i := 1; i < numBins-1; i++ {
		centers[i] = (breaks[i-1] + breaks[i]) / 2
	}
	centers[numBins-1] = breaks[numBins-2] + step/2

	return &DistogramBins{breaks: breaks, centers: centers}
}

// DefaultDistogramBins64 creates the default 64-bin table over
// [FirstBreak, LastBreak].
func DefaultDistogramBins64() *DistogramBins {
	return NewDistogramBins(FirstBreak, LastBreak, DefaultDistogramBins)
}

// NumBins returns the number of bins.
func (b *DistogramBins) NumBins() int {
	return len(b.centers)
}

// Breaks returns a copy of the bin boundaries.
func (b *DistogramBins) Breaks() []float64 {
	out := make([]float64, len(b.breaks))
	copy(out, b.breaks)
	return out
}

// Centers returns a copy of the bin centers.
func (b *DistogramBins) Centers() []float64 {
	out := make([]float64, len(b.centers))
	copy(out, b.centers)
	return out
}

// Softmax converts logits to probabilities over the trailing class axis.
//
// The input is not mutated; a new tensor of the same shape is returned.
func Softmax(logits *tensor.Dense) *tensor.Dense {
	out := logits.Clone().(*tensor.Dense)
	shape := out.Shape()
	k := shape[len(shape)-1]
	data := out.Data().([]float32)

	scratch := make([]float64, k)
	for offset := 0; offset < len(data); offset += k {
		for i := 0; i < k; i++ {
			scratch[i] = float64(data[offset+i])
		}
		max := floats.Max(scratch)
		for i := range scratch {
			scratch[i] = math.Exp(scratch[i] - max)
		}
		floats.Scale(1/floats.Sum(scratch), scratch)
		for i := 0; i < k; i++ {
			data[offset+i] = float32(scratch[i])
		}
	}

	return out
}

// ExpectedDistance reduces distogram probabilities to the
// probability-weighted mean distance per token pair.
//
// Input shape: [*, N_token, N_token, numBins] (probabilities, e.g. from
// Softmax). Output shape: [*, N_token, N_token].
func (b *DistogramBins) ExpectedDistance(probs *tensor.Dense) (*tensor.Dense, error) {
	data, shape, err := b.classAxisData(probs)
	if err != nil {
		return nil, fmt.Errorf("DistogramBins.ExpectedDistance: %w", err)
	}

	k := b.NumBins()
	out := make([]float32, len(data)/k)
	scratch := make([]float64, k)
	for row := range out {
		offset := row * k
		for i := 0; i < k; i++ {
			scratch[i] = float64(data[offset+i])
		}
		out[row] = float32(floats.Dot(scratch, b.centers))
	}

	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(out)), nil
}

// ContactProbability sums the probability mass of bins whose center lies
// within cutoff angstroms, giving a per-pair contact probability.
//
// Input shape: [*, N_token, N_token, numBins] (probabilities). Output shape:
// [*, N_token, N_token]. A cutoff of 8.0 is the usual contact definition.
func (b *DistogramBins) ContactProbability(probs *tensor.Dense, cutoff float64) (*tensor.Dense, error) {
	data, shape, err := b.classAxisData(probs)
	if err != nil {
		return nil, fmt.Errorf("DistogramBins.ContactProbability: %w", err)
	}

	k := b.NumBins()
	out := make([]float32, len(data)/k)
	for row := range out {
		offset := row * k
		var mass float32
		for i := 0; i < k; i++ {
			if b.centers[i] <= cutoff {
				mass += data[offset+i]
			}
		}
		out[row] = mass
	}

	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(out)), nil
}

// classAxisData validates the trailing class axis and returns the flat data
// together with the reduced output shape.
func (b *DistogramBins) classAxisData(probs *tensor.Dense) ([]float32, tensor.Shape, error) {
	shape := probs.Shape()
	if shape.Dims() < 2 {
		return nil, nil, fmt.Errorf("expected at least 2 dimensions, got shape %v", shape)
	}
	if shape[len(shape)-1] != b.NumBins() {
		return nil, nil, fmt.Errorf("expected %d bins on the trailing axis, got %d (shape %v)",
			b.NumBins(), shape[len(shape)-1], shape)
	}

	reduced := make(tensor.Shape, len(shape)-1)
	copy(reduced, shape[:len(shape)-1])
	return probs.Data().([]float32), reduced, nil
}
