package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/flows/internal/tensor"
)

// unary applies fn element-wise and returns a fresh tensor.
// domain, when non-nil, validates each input value before fn is applied.
func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor, fn func(float64) float64, domain func(float64) error) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			if domain != nil {
				if err := domain(float64(v)); err != nil {
					panic(fmt.Sprintf("%s: %v at index %d", name, err, i))
				}
			}
			dst[i] = float32(fn(float64(v)))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			if domain != nil {
				if err := domain(v); err != nil {
					panic(fmt.Sprintf("%s: %v at index %d", name, err, i))
				}
			}
			dst[i] = fn(v)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math.Exp, nil)
}

// Log computes element-wise natural logarithm: ln(x).
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math.Log, func(v float64) error {
		if v <= 0 {
			return fmt.Errorf("non-positive value %f", v)
		}
		return nil
	})
}

// Log1p computes element-wise log(1 + x), accurate for x near zero.
func (cpu *CPUBackend) Log1p(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log1p", x, math.Log1p, func(v float64) error {
		if v <= -1 {
			return fmt.Errorf("value %f <= -1", v)
		}
		return nil
	})
}

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sqrt", x, math.Sqrt, func(v float64) error {
		if v < 0 {
			return fmt.Errorf("negative value %f", v)
		}
		return nil
	})
}

// Softplus computes element-wise log(1 + exp(x)).
// For large x the identity softplus(x) ≈ x is used to avoid overflow in exp.
func (cpu *CPUBackend) Softplus(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("softplus", x, softplus, nil)
}

func softplus(v float64) float64 {
	// exp(v) overflows float64 well before v=700; past 20 the
	// correction log1p(exp(-v)) is below float64 epsilon anyway.
	if v > 20 {
		return v
	}
	if v < -20 {
		return math.Exp(v)
	}
	return math.Log1p(math.Exp(v))
}

// Reciprocal computes element-wise 1/x.
func (cpu *CPUBackend) Reciprocal(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("reciprocal", x, func(v float64) float64 { return 1.0 / v }, nil)
}

// Neg computes element-wise negation: -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("neg", x, func(v float64) float64 { return -v }, nil)
}
