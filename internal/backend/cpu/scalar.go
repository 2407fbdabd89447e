package cpu

import (
	"fmt"

	"github.com/born-ml/flows/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar, opMul)
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar, opAdd)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar, opSub)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar, opDiv)
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, scalar any, op binOp) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	s := scalarToFloat64(name, scalar)

	switch x.DType() {
	case tensor.Float32:
		applyScalar(op, result.AsFloat32(), x.AsFloat32(), float32(s))
	case tensor.Float64:
		applyScalar(op, result.AsFloat64(), x.AsFloat64(), s)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}

	return result
}

func applyScalar[T tensor.DType](op binOp, dst, src []T, s T) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = src[i] + s
		}
	case opSub:
		for i := range dst {
			dst[i] = src[i] - s
		}
	case opMul:
		for i := range dst {
			dst[i] = src[i] * s
		}
	case opDiv:
		for i := range dst {
			dst[i] = src[i] / s
		}
	}
}

func scalarToFloat64(name string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}
