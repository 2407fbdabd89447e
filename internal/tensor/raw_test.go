package tensor

import (
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", raw.Shape())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize = %d, want 24", raw.ByteSize())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", raw.DType())
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, -1}, Float32, CPU)
	if err == nil {
		t.Fatal("expected error for invalid shape")
	}
}

func TestAsFloat32(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32, CPU)

	data := raw.AsFloat32()
	if len(data) != 4 {
		t.Fatalf("AsFloat32 length = %d, want 4", len(data))
	}

	// Zero-copy: writes through the view land in the buffer.
	data[2] = 7
	if raw.AsFloat32()[2] != 7 {
		t.Error("AsFloat32 must be a view over the buffer, not a copy")
	}
}

func TestAsFloat32WrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float64, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for dtype mismatch")
		}
	}()
	raw.AsFloat32()
}

func TestRawClone(t *testing.T) {
	raw, _ := NewRaw(Shape{3}, Float32, CPU)
	copy(raw.AsFloat32(), []float32{1, 2, 3})

	clone := raw.Clone()
	clone.AsFloat32()[0] = 99

	if raw.AsFloat32()[0] != 1 {
		t.Error("Clone must not share memory with the original")
	}
}

func TestWithShape(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)
	copy(raw.AsFloat32(), []float32{1, 2, 3, 4, 5, 6})

	view := raw.WithShape(Shape{3, 2})
	if !view.Shape().Equal(Shape{3, 2}) {
		t.Errorf("view shape = %v, want [3 2]", view.Shape())
	}

	// Same buffer
	view.AsFloat32()[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("WithShape must share the buffer")
	}
}

func TestWithShapeIncompatible(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for element count mismatch")
		}
	}()
	raw.WithShape(Shape{4})
}
