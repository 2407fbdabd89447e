package nn_test

import (
	"testing"

	"github.com/born-ml/flows/internal/backend/cpu"
	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/tensor"
)

// Helper to check if values are approximately equal.
func floatEqual(a, b, epsilon float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	backend := cpu.New()

	data, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	param := nn.NewParameter("test_param", data)

	if param.Name() != "test_param" {
		t.Errorf("Name() = %s, want test_param", param.Name())
	}
	if param.Tensor() != data {
		t.Error("Tensor() should return the original tensor")
	}
	if param.Grad() != nil {
		t.Error("Grad() should initially be nil")
	}

	grad, _ := tensor.FromSlice([]float32{0.1, 0.2, 0.3}, tensor.Shape{3}, backend)
	param.SetGrad(grad)
	if param.Grad() != grad {
		t.Error("SetGrad() should set the gradient")
	}

	param.ZeroGrad()
	if param.Grad() != nil {
		t.Error("ZeroGrad() should clear the gradient")
	}
}

// TestLinear_Creation tests Linear layer initialization.
func TestLinear_Creation(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(10, 5, backend)

	if layer.InFeatures() != 10 {
		t.Errorf("InFeatures() = %d, want 10", layer.InFeatures())
	}
	if layer.OutFeatures() != 5 {
		t.Errorf("OutFeatures() = %d, want 5", layer.OutFeatures())
	}

	// Weight shape: [out_features, in_features]
	weight := layer.Weight().Tensor()
	if !weight.Shape().Equal(tensor.Shape{5, 10}) {
		t.Errorf("Weight shape = %v, want [5 10]", weight.Shape())
	}

	// Bias shape: [out_features], zero-initialized
	bias := layer.Bias().Tensor()
	if !bias.Shape().Equal(tensor.Shape{5}) {
		t.Errorf("Bias shape = %v, want [5]", bias.Shape())
	}
	for i, v := range bias.Data() {
		if v != 0 {
			t.Errorf("Bias[%d] = %f, want 0", i, v)
		}
	}

	params := layer.Parameters()
	if len(params) != 2 {
		t.Errorf("Parameters() length = %d, want 2", len(params))
	}
}

// TestLinear_Forward tests Linear layer forward pass with known weights.
func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(2, 2, backend)

	// Weight: [[1, 2], [3, 4]] (out=2, in=2)
	copy(layer.Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	// Bias: [0.5, 1.0]
	copy(layer.Bias().Tensor().Data(), []float32{0.5, 1.0})

	input, _ := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2}, backend)

	output := layer.Forward(input)

	// y = x @ W.T + b = [1*1+1*2, 1*3+1*4] + [0.5, 1.0] = [3.5, 8.0]
	expected := []float32{3.5, 8.0}
	actual := output.Data()
	for i, exp := range expected {
		if !floatEqual(actual[i], exp, 1e-5) {
			t.Errorf("Output[%d] = %f, want %f", i, actual[i], exp)
		}
	}

	if !output.Shape().Equal(tensor.Shape{1, 2}) {
		t.Errorf("Output shape = %v, want [1 2]", output.Shape())
	}
}

// TestLinear_ForwardBatch tests Linear with batched input.
func TestLinear_ForwardBatch(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(3, 2, backend)
	copy(layer.Weight().Tensor().Data(), []float32{1, 0, 0, 0, 1, 0})

	input, _ := tensor.FromSlice([]float32{
		1, 2, 3,
		4, 5, 6,
	}, tensor.Shape{2, 3}, backend)

	output := layer.Forward(input)

	if !output.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("Output shape = %v, want [2 2]", output.Shape())
	}

	// Weight picks the first two features; bias is zero.
	expected := []float32{1, 2, 4, 5}
	actual := output.Data()
	for i, exp := range expected {
		if !floatEqual(actual[i], exp, 1e-5) {
			t.Errorf("Output[%d] = %f, want %f", i, actual[i], exp)
		}
	}
}

// TestLinear_Forward1DPanics tests the 2D input contract.
func TestLinear_Forward1DPanics(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(3, 2, backend)
	input, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for 1D input")
		}
	}()
	layer.Forward(input)
}

// TestReLU_Forward tests ReLU activation.
func TestReLU_Forward(t *testing.T) {
	backend := cpu.New()

	relu := nn.NewReLU[*cpu.CPUBackend]()
	input, _ := tensor.FromSlice([]float32{-2, -0.5, 0, 0.5, 2}, tensor.Shape{5}, backend)

	output := relu.Forward(input)

	expected := []float32{0, 0, 0, 0.5, 2}
	for i, exp := range expected {
		if output.Data()[i] != exp {
			t.Errorf("Output[%d] = %f, want %f", i, output.Data()[i], exp)
		}
	}

	if len(relu.Parameters()) != 0 {
		t.Error("ReLU should have no parameters")
	}
}

// TestXavier_Bounds tests Xavier initialization stays within its bound.
func TestXavier_Bounds(t *testing.T) {
	backend := cpu.New()

	inFeatures, outFeatures := 10, 20
	w := nn.Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, backend)

	// limit = sqrt(6 / (in + out))
	limit := float32(0.4472136) // sqrt(6/30)
	allZero := true
	for i, v := range w.Data() {
		if v < -limit || v > limit {
			t.Errorf("Weight[%d] = %f, outside [-%f, %f]", i, v, limit, limit)
		}
		if v != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Error("Xavier produced all zeros")
	}
}
