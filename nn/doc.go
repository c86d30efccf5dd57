// Copyright 2025 The ODesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network primitives used by the ODesign
// prediction heads.
//
// # Overview
//
// This package contains:
//   - Module interface and Parameter
//   - Linear: affine projection over the trailing feature axis
//   - Sequential: container for chaining modules
//   - Initialization: LeCunNormal, Xavier, ZeroInit, Zeros, Ones
//
// Tensors are dense float32 gorgonia tensors (gorgonia.org/tensor).
//
// # Basic Usage
//
//	import (
//	    "github.com/AspirinCode/ODesign/nn"
//	)
//
//	// A two-stage classifier over the trailing feature axis.
//	classifier := nn.NewSequential(
//	    nn.NewLinear(128, 128),
//	    nn.NewLinear(128, 5),
//	)
//
//	logits, err := classifier.Forward(z) // [..., 128] -> [..., 5]
//
// # Initialization
//
// Weights default to LeCun-normal draws. A layer can instead start as a
// neutral predictor:
//
//	layer := nn.NewLinear(128, 64, nn.WithInitializer(nn.ZeroInit))
package nn
