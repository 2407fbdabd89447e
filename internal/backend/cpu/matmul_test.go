package cpu

import (
	"testing"

	"github.com/born-ml/flows/internal/tensor"
)

func TestMatMul(t *testing.T) {
	backend := New()

	// [[1, 2], [3, 4]] @ [[5, 6], [7, 8]] = [[19, 22], [43, 50]]
	a := newRawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := newRawFrom(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	result := backend.MatMul(a, b)

	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", result.Shape())
	}
	want := []float32{19, 22, 43, 50}
	output := result.AsFloat32()
	for i := range want {
		if output[i] != want[i] {
			t.Errorf("output[%d] = %f, want %f", i, output[i], want[i])
		}
	}
}

func TestMatMulRectangular(t *testing.T) {
	backend := New()

	// (1, 3) @ (3, 2) → (1, 2)
	a := newRawFrom(t, []float32{1, 2, 3}, tensor.Shape{1, 3})
	b := newRawFrom(t, []float32{1, 4, 2, 5, 3, 6}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)

	if !result.Shape().Equal(tensor.Shape{1, 2}) {
		t.Fatalf("shape = %v, want [1 2]", result.Shape())
	}
	output := result.AsFloat32()
	// [1*1+2*2+3*3, 1*4+2*5+3*6] = [14, 32]
	if output[0] != 14 || output[1] != 32 {
		t.Errorf("output = %v, want [14 32]", output)
	}
}

func TestMatMulWithZeros(t *testing.T) {
	backend := New()

	a := newRawFrom(t, []float32{0, 2, 0, 0}, tensor.Shape{2, 2})
	b := newRawFrom(t, []float32{1, 1, 1, 1}, tensor.Shape{2, 2})

	result := backend.MatMul(a, b)

	want := []float32{2, 2, 0, 0}
	output := result.AsFloat32()
	for i := range want {
		if output[i] != want[i] {
			t.Errorf("output[%d] = %f, want %f", i, output[i], want[i])
		}
	}
}

func TestMatMulIncompatiblePanic(t *testing.T) {
	backend := New()

	a := newRawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := newRawFrom(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for incompatible inner dimensions")
		}
	}()
	backend.MatMul(a, b)
}

func TestMatMulNon2DPanic(t *testing.T) {
	backend := New()

	a := newRawFrom(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := newRawFrom(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for non-2D input")
		}
	}()
	backend.MatMul(a, b)
}
