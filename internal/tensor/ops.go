package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.MatMul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	result := t.backend.Reshape(t.raw, Shape(newShape))
	return New[T, B](result, t.backend)
}

// Transpose transposes the tensor by permuting its dimensions.
//
// If axes is empty, reverses all dimensions (for 2D, this is standard transpose).
// Otherwise, axes specifies the permutation.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	result := t.backend.Transpose(t.raw, axes...)
	return New[T, B](result, t.backend)
}

// T is a shortcut for 2D transpose (swaps rows and columns).
// Panics if the tensor is not 2D.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	if len(t.Shape()) != 2 {
		panic("T() only works for 2D tensors")
	}
	return t.Transpose(1, 0)
}

// Scalar operations

// MulScalar multiplies each element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar to each element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar from each element.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides each element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// Math operations

// Exp computes the element-wise exponential.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	result := t.backend.Exp(t.raw)
	return New[T, B](result, t.backend)
}

// Log computes the element-wise natural logarithm.
// Panics on non-positive values.
func (t *Tensor[T, B]) Log() *Tensor[T, B] {
	result := t.backend.Log(t.raw)
	return New[T, B](result, t.backend)
}

// Log1p computes element-wise log(1 + x), accurate for x near zero.
// Panics on values <= -1.
func (t *Tensor[T, B]) Log1p() *Tensor[T, B] {
	result := t.backend.Log1p(t.raw)
	return New[T, B](result, t.backend)
}

// Sqrt computes the element-wise square root.
// Panics on negative values.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	result := t.backend.Sqrt(t.raw)
	return New[T, B](result, t.backend)
}

// Softplus computes element-wise log(1 + exp(x)).
// The result is strictly positive for all finite inputs, which is what
// makes softplus the standard smooth positivity reparameterization.
func (t *Tensor[T, B]) Softplus() *Tensor[T, B] {
	result := t.backend.Softplus(t.raw)
	return New[T, B](result, t.backend)
}

// Reciprocal computes element-wise 1/x.
func (t *Tensor[T, B]) Reciprocal() *Tensor[T, B] {
	result := t.backend.Reciprocal(t.raw)
	return New[T, B](result, t.backend)
}

// Neg computes element-wise negation.
func (t *Tensor[T, B]) Neg() *Tensor[T, B] {
	result := t.backend.Neg(t.raw)
	return New[T, B](result, t.backend)
}

// Reductions

// Sum computes the total sum of all elements (scalar result, empty shape).
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	result := t.backend.Sum(t.raw)
	return New[T, B](result, t.backend)
}

// SumDim sums along a dimension. Negative dims index from the end.
//
// Example:
//
//	x := tensor.Randn[float32](Shape{2, 3, 4}, backend)
//	y := x.SumDim(-1, true)  // shape: [2, 3, 1]
//	z := x.SumDim(-1, false) // shape: [2, 3]
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.SumDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// MeanDim computes the mean along a dimension. Negative dims index from the end.
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.MeanDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// Norm computes the Euclidean (L2) norm along a dimension.
// Composed from Mul, SumDim and Sqrt.
func (t *Tensor[T, B]) Norm(dim int, keepDim bool) *Tensor[T, B] {
	return t.Mul(t).SumDim(dim, keepDim).Sqrt()
}

// Manipulation

// Unsqueeze inserts a dimension of size 1 at the given position.
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	result := t.backend.Unsqueeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Squeeze removes a dimension of size 1 at the given position.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	result := t.backend.Squeeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Narrow returns a slice of the tensor along dim, from start (inclusive)
// spanning length elements.
//
// Example:
//
//	x := tensor.Randn[float32](Shape{4, 6}, backend)
//	y := x.Narrow(-1, 2, 3) // shape: [4, 3]
func (t *Tensor[T, B]) Narrow(dim, start, length int) *Tensor[T, B] {
	result := t.backend.Narrow(t.raw, dim, start, length)
	return New[T, B](result, t.backend)
}
