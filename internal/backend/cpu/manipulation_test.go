package cpu

import (
	"testing"

	"github.com/born-ml/flows/internal/tensor"
)

func TestUnsqueeze(t *testing.T) {
	backend := New()

	x := newRawFrom(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tests := []struct {
		name      string
		dim       int
		wantShape tensor.Shape
	}{
		{"front", 0, tensor.Shape{1, 2, 3}},
		{"middle", 1, tensor.Shape{2, 1, 3}},
		{"back", 2, tensor.Shape{2, 3, 1}},
		{"negative", -1, tensor.Shape{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := backend.Unsqueeze(x, tt.dim)
			if !result.Shape().Equal(tt.wantShape) {
				t.Errorf("shape = %v, want %v", result.Shape(), tt.wantShape)
			}
		})
	}
}

func TestSqueeze(t *testing.T) {
	backend := New()

	x := newRawFrom(t, []float32{1, 2, 3}, tensor.Shape{1, 3})

	result := backend.Squeeze(x, 0)
	if !result.Shape().Equal(tensor.Shape{3}) {
		t.Errorf("shape = %v, want [3]", result.Shape())
	}

	// Shares the buffer
	result.AsFloat32()[0] = 42
	if x.AsFloat32()[0] != 42 {
		t.Error("Squeeze must be a view over the same buffer")
	}
}

func TestSqueezeNonUnitDimPanic(t *testing.T) {
	backend := New()
	x := newRawFrom(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for squeezing a non-unit dimension")
		}
	}()
	backend.Squeeze(x, 0)
}

func TestNarrow(t *testing.T) {
	backend := New()

	// [[1, 2, 3, 4], [5, 6, 7, 8]]
	x := newRawFrom(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 4})

	tests := []struct {
		name      string
		dim       int
		start     int
		length    int
		wantShape tensor.Shape
		want      []float32
	}{
		{"last dim middle", -1, 1, 2, tensor.Shape{2, 2}, []float32{2, 3, 6, 7}},
		{"last dim head", 1, 0, 1, tensor.Shape{2, 1}, []float32{1, 5}},
		{"first dim", 0, 1, 1, tensor.Shape{1, 4}, []float32{5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := backend.Narrow(x, tt.dim, tt.start, tt.length)

			if !result.Shape().Equal(tt.wantShape) {
				t.Fatalf("shape = %v, want %v", result.Shape(), tt.wantShape)
			}
			output := result.AsFloat32()
			for i, want := range tt.want {
				if output[i] != want {
					t.Errorf("output[%d] = %f, want %f", i, output[i], want)
				}
			}
		})
	}
}

func TestNarrowOutOfBoundsPanic(t *testing.T) {
	backend := New()
	x := newRawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{4})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-bounds narrow range")
		}
	}()
	backend.Narrow(x, 0, 2, 3)
}

func TestScalarOps(t *testing.T) {
	backend := New()

	x := newRawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{4})

	tests := []struct {
		name   string
		op     func(x *tensor.RawTensor, s any) *tensor.RawTensor
		scalar any
		want   []float32
	}{
		{"mul float32", backend.MulScalar, float32(2), []float32{2, 4, 6, 8}},
		{"add float64", backend.AddScalar, float64(1), []float32{2, 3, 4, 5}},
		{"sub int", backend.SubScalar, 1, []float32{0, 1, 2, 3}},
		{"div", backend.DivScalar, float32(2), []float32{0.5, 1, 1.5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(x, tt.scalar)
			output := result.AsFloat32()
			for i, want := range tt.want {
				if output[i] != want {
					t.Errorf("output[%d] = %f, want %f", i, output[i], want)
				}
			}
		})
	}
}

func TestScalarOpUnsupportedTypePanic(t *testing.T) {
	backend := New()
	x := newRawFrom(t, []float32{1}, tensor.Shape{1})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unsupported scalar type")
		}
	}()
	backend.MulScalar(x, "2")
}
