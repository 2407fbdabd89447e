// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go
//
// Example:
//
//	import (
//	    "github.com/born-ml/flows/tensor"
//	    "github.com/born-ml/flows/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting).
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // Matrix multiplication.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Transpose dimensions.

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor        // Exponential.
	Log(x *RawTensor) *RawTensor        // Natural logarithm.
	Log1p(x *RawTensor) *RawTensor      // log(1 + x), accurate near zero.
	Sqrt(x *RawTensor) *RawTensor       // Square root.
	Softplus(x *RawTensor) *RawTensor   // log(1 + exp(x)).
	Reciprocal(x *RawTensor) *RawTensor // 1 / x.
	Neg(x *RawTensor) *RawTensor        // -x.

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor                            // Total sum (scalar result).
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor  // Sum along dimension.
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Mean along dimension.

	// Manipulation operations.
	Unsqueeze(x *RawTensor, dim int) *RawTensor             // Add dimension of size 1.
	Squeeze(x *RawTensor, dim int) *RawTensor               // Remove dimension of size 1.
	Narrow(x *RawTensor, dim, start, length int) *RawTensor // Slice along dimension.

	// Metadata.
	Name() string   // Backend name.
	Device() Device // Compute device.
}
