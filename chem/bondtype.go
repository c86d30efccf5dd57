// Copyright 2025 The ODesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chem defines chemical constant tables shared across the model.
package chem

import "fmt"

// BondType is a categorical label describing the chemical bond between a
// pair of tokens, if any.
//
// The ordering is fixed: it matches the class axis of bond-type logits, so
// BondSingle corresponds to logit channel 1, and so on.
type BondType uint8

const (
	BondNone BondType = iota
	BondSingle
	BondDouble
	BondTriple
	BondAromatic
)

// NumBondTypes is the cardinality of the bond-type enumeration. It fixes the
// default class count for bond-type classification.
const NumBondTypes = 5

// BondTypes returns the enumeration in logit-channel order.
func BondTypes() [NumBondTypes]BondType {
	return [NumBondTypes]BondType{BondNone, BondSingle, BondDouble, BondTriple, BondAromatic}
}

// String returns the canonical name of the bond type.
func (b BondType) String() string {
	switch b {
	case BondNone:
		return "none"
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondAromatic:
		return "aromatic"
	default:
		return fmt.Sprintf("BondType(%d)", uint8(b))
	}
}
