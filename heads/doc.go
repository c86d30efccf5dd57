// Copyright 2025 The ODesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package heads provides the pairwise output heads of the ODesign model.
//
// # Overview
//
// The heads map the pair embedding produced by the upstream pairformer
// encoder into task-specific prediction logits:
//   - DistogramHead: inter-residue distance-bin logits, symmetric over the
//     two token axes
//   - BondTypeHead: bond-class logits per token pair
//   - PairwiseHead: composite that always owns a DistogramHead and,
//     optionally, a BondTypeHead
//
// # Basic Usage
//
//	import (
//	    "github.com/AspirinCode/ODesign/heads"
//	)
//
//	head := heads.NewPairwiseHead(heads.PairwiseConfig{
//	    BondReconstruction: true,
//	})
//
//	out, err := head.Forward(&heads.PairFormerOutput{Z: z})
//	if err != nil {
//	    // shape mismatch between z and the configured pair width
//	}
//	_ = out.Distogram      // [*, N, N, 64]
//	_ = out.BondTypeLogits // [1, *, N, N, 5], nil without bond reconstruction
//
// # Distance readouts
//
// Distogram logits convert to physical quantities through a bin table:
//
//	bins := heads.DefaultDistogramBins64()
//	probs := heads.Softmax(out.Distogram)
//	dist, err := bins.ExpectedDistance(probs)
//	contact, err := bins.ContactProbability(probs, 8.0)
package heads
