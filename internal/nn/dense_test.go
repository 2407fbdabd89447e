package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/flows/internal/backend/cpu"
	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/tensor"
)

// TestDenseNN_HeadShapes tests that the output splits into the requested heads.
func TestDenseNN_HeadShapes(t *testing.T) {
	backend := cpu.New()

	// Context width 4, heads (3, 1, 1): the radial conditioner layout for D=3.
	net := nn.NewDenseNN(4, []int{16, 16}, []int{3, 1, 1}, backend)

	context, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	heads := net.Forward(context)
	require.Len(t, heads, 3)

	assert.True(t, heads[0].Shape().Equal(tensor.Shape{3}), "head 0 shape = %v", heads[0].Shape())
	assert.True(t, heads[1].Shape().Equal(tensor.Shape{1}), "head 1 shape = %v", heads[1].Shape())
	assert.True(t, heads[2].Shape().Equal(tensor.Shape{1}), "head 2 shape = %v", heads[2].Shape())
}

// TestDenseNN_BatchedHeadShapes tests batched contexts keep the batch dimension.
func TestDenseNN_BatchedHeadShapes(t *testing.T) {
	backend := cpu.New()

	net := nn.NewDenseNN(2, []int{8}, []int{2, 1}, backend)

	context := tensor.Randn[float32](tensor.Shape{5, 2}, backend)
	heads := net.Forward(context)
	require.Len(t, heads, 2)

	assert.True(t, heads[0].Shape().Equal(tensor.Shape{5, 2}), "head 0 shape = %v", heads[0].Shape())
	assert.True(t, heads[1].Shape().Equal(tensor.Shape{5, 1}), "head 1 shape = %v", heads[1].Shape())
}

// TestDenseNN_HeadsPartitionOutput tests that heads tile the output layer
// activations in order, without overlap.
func TestDenseNN_HeadsPartitionOutput(t *testing.T) {
	backend := cpu.New()

	net := nn.NewDenseNN(2, []int{4}, []int{2, 1, 1}, backend)

	context := tensor.Randn[float32](tensor.Shape{2}, backend)
	heads := net.Forward(context)

	// Running the same context twice is deterministic.
	again := net.Forward(context)
	for h := range heads {
		require.Equal(t, heads[h].Data(), again[h].Data(), "head %d not deterministic", h)
	}
}

// TestDenseNN_Parameters tests parameter registration across all layers.
func TestDenseNN_Parameters(t *testing.T) {
	backend := cpu.New()

	// 2 hidden layers + 1 output layer, each with weight and bias.
	net := nn.NewDenseNN(3, []int{8, 8}, []int{3, 1, 1}, backend)

	params := net.Parameters()
	assert.Len(t, params, 6)

	assert.Equal(t, 3, net.ContextDim())
	assert.Equal(t, []int{3, 1, 1}, net.ParamDims())
}

// TestDenseNN_InvalidConfig tests constructor validation.
func TestDenseNN_InvalidConfig(t *testing.T) {
	backend := cpu.New()

	assert.Panics(t, func() { nn.NewDenseNN(0, []int{8}, []int{1}, backend) })
	assert.Panics(t, func() { nn.NewDenseNN(3, nil, []int{1}, backend) })
	assert.Panics(t, func() { nn.NewDenseNN(3, []int{8}, nil, backend) })
	assert.Panics(t, func() { nn.NewDenseNN(3, []int{8}, []int{2, 0}, backend) })
}

// TestDenseNN_Forward3DPanics tests the context rank contract.
func TestDenseNN_Forward3DPanics(t *testing.T) {
	backend := cpu.New()

	net := nn.NewDenseNN(2, []int{4}, []int{1}, backend)
	context := tensor.Randn[float32](tensor.Shape{2, 2, 2}, backend)

	assert.Panics(t, func() { net.Forward(context) })
}
