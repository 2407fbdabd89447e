package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
//
// The surface is sized for bijective-transform math: element-wise
// arithmetic with broadcasting, the unary math family, reductions along
// a dimension, matrix multiplication for conditioner networks, and a
// handful of shape manipulations.
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Matrix operations
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor        // exponential
	Log(x *RawTensor) *RawTensor        // natural logarithm
	Log1p(x *RawTensor) *RawTensor      // log(1 + x), accurate near zero
	Sqrt(x *RawTensor) *RawTensor       // square root
	Softplus(x *RawTensor) *RawTensor   // log(1 + exp(x)), smooth positive reparameterization
	Reciprocal(x *RawTensor) *RawTensor // 1 / x
	Neg(x *RawTensor) *RawTensor        // -x

	// Reduction operations
	Sum(x *RawTensor) *RawTensor                            // total sum (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor  // sum along dimension
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // mean along dimension

	// Manipulation operations
	Unsqueeze(x *RawTensor, dim int) *RawTensor              // add dimension of size 1
	Squeeze(x *RawTensor, dim int) *RawTensor                // remove dimension of size 1
	Narrow(x *RawTensor, dim, start, length int) *RawTensor  // slice along dimension

	// Metadata
	Name() string
	Device() Device
}
