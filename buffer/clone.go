// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"maps"
	"slices"
)

// Clone returns an independent deep copy of b with the same storage strategy
// and allocation state. Unallocated buffers clone to unallocated buffers of
// the same kind; a Float that adopted a caller slice clones into storage of
// its own. Buffer implementations from outside this package are rejected
// with ErrUnsupported.
//
// The copy is O(Size) and assumes the source is not mutated while it runs.
func Clone(b Buffer) (Buffer, error) {
	switch src := b.(type) {
	case *Float:
		return &Float{lifecycle: src.lifecycle, data: slices.Clone(src.data)}, nil
	case *Rounded:
		return &Rounded{lifecycle: src.lifecycle, data: slices.Clone(src.data)}, nil
	case *SignedByte:
		return &SignedByte{lifecycle: src.lifecycle, data: slices.Clone(src.data)}, nil
	case *UnsignedByte:
		return &UnsignedByte{lifecycle: src.lifecycle, data: slices.Clone(src.data)}, nil
	case *Half:
		return &Half{lifecycle: src.lifecycle, data: slices.Clone(src.data)}, nil
	case *Sparse:
		return &Sparse{lifecycle: src.lifecycle, def: src.def, data: maps.Clone(src.data)}, nil
	default:
		return nil, fmt.Errorf("%s(%T): %w", opClone, b, ErrUnsupported)
	}
}
