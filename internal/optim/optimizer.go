// Package optim implements gradient-based parameter optimizers.
//
// Optimizers consume gradients stored on nn.Parameter (set by whatever
// computes them, e.g. numeric differentiation of a loss through a
// transform) and update the parameter tensors in place.
package optim

import (
	"github.com/born-ml/flows/internal/tensor"
)

// Optimizer is the common interface for parameter optimizers.
type Optimizer[B tensor.Backend] interface {
	// Step applies one update to every parameter that has a gradient.
	// Parameters with a nil gradient are skipped.
	Step()

	// ZeroGrad clears the gradients of all managed parameters.
	ZeroGrad()
}
