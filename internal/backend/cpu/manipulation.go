package cpu

import (
	"fmt"

	"github.com/born-ml/flows/internal/tensor"
)

// Unsqueeze adds a dimension of size 1 at the given position.
// Supports negative indexing: -1 inserts before the last position + 1.
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + 1 + dim
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor", dim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)

	return x.WithShape(newShape)
}

// Squeeze removes a dimension of size 1 at the given position.
// Panics if the dimension does not have size 1.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)

	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, len(shape)-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)

	return x.WithShape(newShape)
}

// Narrow returns a slice of the tensor along dim, from start (inclusive)
// spanning length elements. The result owns its own memory.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)

	if start < 0 || length <= 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension %d (size %d)",
			start, start+length, dim, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = length

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("narrow: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		narrow(result.AsFloat32(), x.AsFloat32(), shape, dim, start, length)
	case tensor.Float64:
		narrow(result.AsFloat64(), x.AsFloat64(), shape, dim, start, length)
	default:
		panic(fmt.Sprintf("narrow: unsupported dtype %s", x.DType()))
	}

	return result
}

// narrow copies the selected slab. The buffer decomposes into outer blocks,
// each holding shape[dim] contiguous runs of size inner.
func narrow[T tensor.DType](dst, src []T, shape tensor.Shape, dim, start, length int) {
	inner := 1
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}

	srcBlock := shape[dim] * inner
	dstBlock := length * inner

	for o := 0; o < outer; o++ {
		srcOff := o*srcBlock + start*inner
		dstOff := o * dstBlock
		copy(dst[dstOff:dstOff+dstBlock], src[srcOff:srcOff+dstBlock])
	}
}
