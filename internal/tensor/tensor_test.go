package tensor

import (
	"testing"
)

// mockBackend implements just enough of Backend for construction tests.
type mockBackend struct{}

func (m *mockBackend) Name() string                                       { return "mock" }
func (m *mockBackend) Device() Device                                     { return CPU }
func (m *mockBackend) Add(a, b *RawTensor) *RawTensor                     { return a }
func (m *mockBackend) Sub(a, b *RawTensor) *RawTensor                     { return a }
func (m *mockBackend) Mul(a, b *RawTensor) *RawTensor                     { return a }
func (m *mockBackend) Div(a, b *RawTensor) *RawTensor                     { return a }
func (m *mockBackend) MatMul(a, b *RawTensor) *RawTensor                  { return a }
func (m *mockBackend) Reshape(x *RawTensor, shape Shape) *RawTensor       { return x }
func (m *mockBackend) Transpose(x *RawTensor, axes ...int) *RawTensor     { return x }
func (m *mockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor      { return x }
func (m *mockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor      { return x }
func (m *mockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor      { return x }
func (m *mockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor      { return x }
func (m *mockBackend) Exp(x *RawTensor) *RawTensor                        { return x }
func (m *mockBackend) Log(x *RawTensor) *RawTensor                        { return x }
func (m *mockBackend) Log1p(x *RawTensor) *RawTensor                      { return x }
func (m *mockBackend) Sqrt(x *RawTensor) *RawTensor                       { return x }
func (m *mockBackend) Softplus(x *RawTensor) *RawTensor                   { return x }
func (m *mockBackend) Reciprocal(x *RawTensor) *RawTensor                 { return x }
func (m *mockBackend) Neg(x *RawTensor) *RawTensor                        { return x }
func (m *mockBackend) Sum(x *RawTensor) *RawTensor                        { return x }
func (m *mockBackend) SumDim(x *RawTensor, dim int, keep bool) *RawTensor { return x }
func (m *mockBackend) MeanDim(x *RawTensor, dim int, keep bool) *RawTensor {
	return x
}
func (m *mockBackend) Unsqueeze(x *RawTensor, dim int) *RawTensor { return x }
func (m *mockBackend) Squeeze(x *RawTensor, dim int) *RawTensor   { return x }
func (m *mockBackend) Narrow(x *RawTensor, dim, start, length int) *RawTensor {
	return x
}

func TestFromSlice(t *testing.T) {
	backend := &mockBackend{}

	data := []float32{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice(data, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !tt.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", tt.Shape())
	}
	if tt.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", tt.DType())
	}
	if tt.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", tt.NumElements())
	}

	// Data is copied, not aliased
	data[0] = 99
	if tt.Data()[0] != 1 {
		t.Errorf("Data()[0] = %f, want 1 (slice must be copied)", tt.Data()[0])
	}
}

func TestFromSliceShapeMismatch(t *testing.T) {
	backend := &mockBackend{}

	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, backend)
	if err == nil {
		t.Fatal("expected error for mismatched shape and data length")
	}
}

func TestFromSliceFloat64(t *testing.T) {
	backend := &mockBackend{}

	tt, err := FromSlice([]float64{1.5, 2.5}, Shape{2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if tt.DType() != Float64 {
		t.Errorf("DType = %v, want Float64", tt.DType())
	}
	if tt.Data()[1] != 2.5 {
		t.Errorf("Data()[1] = %f, want 2.5", tt.Data()[1])
	}
}

func TestAtSet(t *testing.T) {
	backend := &mockBackend{}

	tt, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)

	if got := tt.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %f, want 6", got)
	}

	tt.Set(42, 0, 1)
	if got := tt.At(0, 1); got != 42 {
		t.Errorf("At(0, 1) after Set = %f, want 42", got)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	backend := &mockBackend{}
	tt, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-bounds index")
		}
	}()
	tt.At(0, 5)
}

func TestItem(t *testing.T) {
	backend := &mockBackend{}

	scalar, _ := FromSlice([]float32{3.5}, Shape{}, backend)
	if got := scalar.Item(); got != 3.5 {
		t.Errorf("Item() = %f, want 3.5", got)
	}
}

func TestItemNonScalarPanics(t *testing.T) {
	backend := &mockBackend{}
	tt, _ := FromSlice([]float32{1, 2}, Shape{2}, backend)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for Item() on non-scalar tensor")
		}
	}()
	tt.Item()
}

func TestClone(t *testing.T) {
	backend := &mockBackend{}

	original, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	clone := original.Clone()

	clone.Data()[0] = 99
	if original.Data()[0] != 1 {
		t.Error("Clone must not share memory with the original")
	}
	if !clone.Shape().Equal(original.Shape()) {
		t.Errorf("Clone shape = %v, want %v", clone.Shape(), original.Shape())
	}
}

func TestGrad(t *testing.T) {
	backend := &mockBackend{}

	tt, _ := FromSlice([]float32{1, 2}, Shape{2}, backend)
	if tt.Grad() != nil {
		t.Error("Grad() should initially be nil")
	}

	grad, _ := FromSlice([]float32{0.1, 0.2}, Shape{2}, backend)
	tt.SetGrad(grad)
	if tt.Grad() != grad {
		t.Error("SetGrad() should store the gradient tensor")
	}
}
