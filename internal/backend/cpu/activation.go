package cpu

import (
	"fmt"

	"github.com/born-ml/flows/internal/tensor"
)

// ReLU computes element-wise max(0, x).
// Exposed through the optional nn.ReLUBackend interface rather than the
// core tensor.Backend contract.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("relu: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		relu(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		relu(result.AsFloat64(), x.AsFloat64())
	default:
		panic(fmt.Sprintf("relu: unsupported dtype %s", x.DType()))
	}

	return result
}

func relu[T tensor.DType](dst, src []T) {
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}
