package chem_test

import (
	"testing"

	"github.com/AspirinCode/ODesign/chem"
)

// TestBondTypes checks the enumeration order and cardinality.
func TestBondTypes(t *testing.T) {
	types := chem.BondTypes()

	if len(types) != chem.NumBondTypes {
		t.Fatalf("len(BondTypes()) = %d, want %d", len(types), chem.NumBondTypes)
	}

	want := []chem.BondType{
		chem.BondNone,
		chem.BondSingle,
		chem.BondDouble,
		chem.BondTriple,
		chem.BondAromatic,
	}
	for i, bt := range want {
		if types[i] != bt {
			t.Errorf("BondTypes()[%d] = %v, want %v", i, types[i], bt)
		}
		if int(bt) != i {
			t.Errorf("%v = %d, want logit channel %d", bt, int(bt), i)
		}
	}
}

// TestBondType_String checks the canonical names.
func TestBondType_String(t *testing.T) {
	cases := map[chem.BondType]string{
		chem.BondNone:     "none",
		chem.BondSingle:   "single",
		chem.BondDouble:   "double",
		chem.BondTriple:   "triple",
		chem.BondAromatic: "aromatic",
		chem.BondType(99): "BondType(99)",
	}
	for bt, want := range cases {
		if got := bt.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint8(bt), got, want)
		}
	}
}
