// SPDX-License-Identifier: MIT
// Package: sigmat/matrix
//
// views.go - lazy composition views over Matrix operands.
//
// Purpose:
//   - Algebra on matrices is expressed as small read-only value types holding
//     operand references: no buffer, no caching, every At recomputes from
//     current operand state. Mutating an operand after building a view is
//     visible through the view.
//
// Behavior highlights:
//   - Elementwise views (Add, Sub, Hadamard) span the elementwise-max shape
//     of their operands; this is deliberately not a hard shape match. Reads
//     that land beyond a smaller operand rely on that operand's zero-padding
//     and surface ErrOutOfRange at access time when it is strict (fail-late).
//   - A view is zero-padded only when noted per builder (usually both
//     operands padded); its own out-of-range reads then yield 0.
//   - Views are not MutableMatrix: there is nothing to write into.
//   - Only Mul validates shapes at build time (inner-dimension rule).
//
// Complexity:
//   - At on Add/Sub/Scale/Hadamard/Transpose/Translate/Enlarge: O(1) plus
//     operand reads. At on Mul: O(inner) operand reads per cell.
//
// AI-Hints:
//   - Chains of views recompute everything per read; Materialize a deep chain
//     once before tight loops.

package matrix

// Operation tags for wrapped errors.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opTranslate = "Translate"
	opEnlarge   = "Enlarge"
)

// pair carries two operands and the shape logic shared by the elementwise
// views: the span is the elementwise max and padding requires both operands
// padded.
type pair struct{ a, b Matrix }

// Rows returns the larger operand row count.
func (p pair) Rows() int { return max(p.a.Rows(), p.b.Rows()) }

// Cols returns the larger operand column count.
func (p pair) Cols() int { return max(p.a.Cols(), p.b.Cols()) }

// ZeroPadded reports true only when both operands are zero-padded.
func (p pair) ZeroPadded() bool { return p.a.ZeroPadded() && p.b.ZeroPadded() }

// at reads both operands at (i, j) after applying the view's own guard.
func (p pair) at(tag string, i, j int) (av, bv float64, pad bool, err error) {
	pad, err = readGuard(p.Rows(), p.Cols(), i, j, p.ZeroPadded())
	if err != nil {
		return 0, 0, false, coordErrorf(tag, i, j, err)
	}
	if pad {
		return 0, 0, true, nil
	}
	if av, err = p.a.At(i, j); err != nil {
		return 0, 0, false, coordErrorf(tag, i, j, err)
	}
	if bv, err = p.b.At(i, j); err != nil {
		return 0, 0, false, coordErrorf(tag, i, j, err)
	}

	return av, bv, false, nil
}

// viewAdd is the lazy elementwise sum.
type viewAdd struct{ pair }

// At returns a(i,j) + b(i,j).
func (v viewAdd) At(i, j int) (float64, error) {
	av, bv, pad, err := v.at(opAdd, i, j)
	if err != nil || pad {
		return 0, err
	}

	return av + bv, nil
}

// viewSub is the lazy elementwise difference.
type viewSub struct{ pair }

// At returns a(i,j) − b(i,j).
func (v viewSub) At(i, j int) (float64, error) {
	av, bv, pad, err := v.at(opSub, i, j)
	if err != nil || pad {
		return 0, err
	}

	return av - bv, nil
}

// viewHadamard is the lazy elementwise product.
type viewHadamard struct{ pair }

// At returns a(i,j) · b(i,j).
func (v viewHadamard) At(i, j int) (float64, error) {
	av, bv, pad, err := v.at(opHadamard, i, j)
	if err != nil || pad {
		return 0, err
	}

	return av * bv, nil
}

// viewScale is the lazy scalar multiple of one operand.
type viewScale struct {
	m     Matrix
	alpha float64
}

// Rows passes through the operand shape.
func (v viewScale) Rows() int { return v.m.Rows() }

// Cols passes through the operand shape.
func (v viewScale) Cols() int { return v.m.Cols() }

// ZeroPadded passes through the operand policy.
func (v viewScale) ZeroPadded() bool { return v.m.ZeroPadded() }

// At returns alpha · m(i,j).
func (v viewScale) At(i, j int) (float64, error) {
	val, err := v.m.At(i, j)
	if err != nil {
		return 0, coordErrorf(opScale, i, j, err)
	}

	return v.alpha * val, nil
}

// viewMul is the lazy matrix product.
type viewMul struct{ a, b Matrix }

// Rows returns the left operand row count.
func (v viewMul) Rows() int { return v.a.Rows() }

// Cols returns the right operand column count.
func (v viewMul) Cols() int { return v.b.Cols() }

// ZeroPadded reports true only when both operands are zero-padded.
func (v viewMul) ZeroPadded() bool { return v.a.ZeroPadded() && v.b.ZeroPadded() }

// At returns the dot product of the left operand's row i with the right
// operand's column j, recomputed on every call.
func (v viewMul) At(i, j int) (float64, error) {
	pad, err := readGuard(v.Rows(), v.Cols(), i, j, v.ZeroPadded())
	if err != nil {
		return 0, coordErrorf(opMul, i, j, err)
	}
	if pad {
		return 0, nil
	}
	var (
		total, av, bv float64
		k             int
	)
	for k = 0; k < v.a.Cols(); k++ {
		if av, err = v.a.At(i, k); err != nil {
			return 0, coordErrorf(opMul, i, j, err)
		}
		if bv, err = v.b.At(k, j); err != nil {
			return 0, coordErrorf(opMul, i, j, err)
		}
		total += av * bv
	}

	return total, nil
}

// viewTranspose swaps the operand's axes.
type viewTranspose struct{ m Matrix }

// Rows returns the operand column count.
func (v viewTranspose) Rows() int { return v.m.Cols() }

// Cols returns the operand row count.
func (v viewTranspose) Cols() int { return v.m.Rows() }

// ZeroPadded passes through the operand policy.
func (v viewTranspose) ZeroPadded() bool { return v.m.ZeroPadded() }

// At returns m(j, i).
func (v viewTranspose) At(i, j int) (float64, error) {
	val, err := v.m.At(j, i)
	if err != nil {
		return 0, coordErrorf(opTranspose, i, j, err)
	}

	return val, nil
}

// viewTranslate repositions the operand inside a shifted coordinate space.
type viewTranslate struct {
	m      Matrix
	dr, dc int
}

// Rows returns the shifted row count, clamped at zero.
func (v viewTranslate) Rows() int { return max(0, v.m.Rows()+v.dr) }

// Cols returns the shifted column count, clamped at zero.
func (v viewTranslate) Cols() int { return max(0, v.m.Cols()+v.dc) }

// ZeroPadded passes through the operand policy.
func (v viewTranslate) ZeroPadded() bool { return v.m.ZeroPadded() }

// At returns m(i−dr, j−dc). For positive shifts the leading coordinates land
// before the operand's origin and follow the operand's padding policy.
func (v viewTranslate) At(i, j int) (float64, error) {
	pad, err := readGuard(v.Rows(), v.Cols(), i, j, v.ZeroPadded())
	if err != nil {
		return 0, coordErrorf(opTranslate, i, j, err)
	}
	if pad {
		return 0, nil
	}
	val, err := v.m.At(i-v.dr, j-v.dc)
	if err != nil {
		return 0, coordErrorf(opTranslate, i, j, err)
	}

	return val, nil
}

// viewEnlarge overlays one operand on another inside the joint bounding box.
type viewEnlarge struct{ a, b Matrix }

// Rows returns the larger operand row count.
func (v viewEnlarge) Rows() int { return max(v.a.Rows(), v.b.Rows()) }

// Cols returns the larger operand column count.
func (v viewEnlarge) Cols() int { return max(v.a.Cols(), v.b.Cols()) }

// ZeroPadded passes through the second operand's policy.
func (v viewEnlarge) ZeroPadded() bool { return v.b.ZeroPadded() }

// At returns a(i,j) when (i, j) lies inside a's bounds, otherwise b(i,j).
func (v viewEnlarge) At(i, j int) (float64, error) {
	pad, err := readGuard(v.Rows(), v.Cols(), i, j, v.ZeroPadded())
	if err != nil {
		return 0, coordErrorf(opEnlarge, i, j, err)
	}
	if pad {
		return 0, nil
	}
	var val float64
	if inBounds(v.a.Rows(), v.a.Cols(), i, j) {
		val, err = v.a.At(i, j)
	} else {
		val, err = v.b.At(i, j)
	}
	if err != nil {
		return 0, coordErrorf(opEnlarge, i, j, err)
	}

	return val, nil
}

// Compile-time interface checks.
var (
	_ Matrix = viewAdd{}
	_ Matrix = viewSub{}
	_ Matrix = viewHadamard{}
	_ Matrix = viewScale{}
	_ Matrix = viewMul{}
	_ Matrix = viewTranspose{}
	_ Matrix = viewTranslate{}
	_ Matrix = viewEnlarge{}
)

// ---------- Builders ----------

// Add returns the lazy elementwise sum of a and b. The view spans the larger
// of the two shapes; reads beyond a smaller, strict operand surface
// ErrOutOfRange at access time.
func Add(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return viewAdd{pair{a, b}}, nil
}

// Sub returns the lazy elementwise difference a − b with Add's shape rules.
func Sub(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return viewSub{pair{a, b}}, nil
}

// Hadamard returns the lazy elementwise product of a and b with Add's shape
// rules.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return viewHadamard{pair{a, b}}, nil
}

// Scale returns the lazy scalar multiple alpha · m, preserving m's shape and
// padding policy.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return viewScale{m: m, alpha: alpha}, nil
}

// Mul returns the lazy matrix product a · b. Construction fails with
// ErrDimensionMismatch unless a.Cols() == b.Rows(); the product spans
// (a.Rows, b.Cols).
func Mul(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return viewMul{a: a, b: b}, nil
}

// Transpose returns the lazy transpose of m.
func Transpose(m Matrix) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return viewTranspose{m: m}, nil
}

// Translate returns a view of m shifted by (dr, dc) inside a logically larger
// coordinate space: At(i, j) reads m(i−dr, j−dc). Negative shifts crop; the
// resulting shape clamps at zero.
func Translate(m Matrix, dr, dc int) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranslate, err)
	}

	return viewTranslate{m: m, dr: dr, dc: dc}, nil
}

// Enlarge overlays a on b: inside a's bounds the view reads a, elsewhere it
// reads b. The view spans the elementwise-max shape and inherits b's padding
// policy.
func Enlarge(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opEnlarge, err)
	}

	return viewEnlarge{a: a, b: b}, nil
}
