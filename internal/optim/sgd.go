package optim

import (
	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/tensor"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	sgd := optim.NewSGD(transform.Parameters(), optim.SGDConfig{LR: 0.05}, backend)
//
//	for epoch := range epochs {
//	    setGradients(transform)  // e.g. numeric gradients of the loss
//	    sgd.Step()
//	    sgd.ZeroGrad()
//	}
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
	backend    B
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
		backend:    backend,
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient set are skipped.
func (s *SGD[B]) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		if s.momentum == 0 {
			s.updateParameter(param, grad)
		} else {
			s.updateParameterWithMomentum(param, grad)
		}
	}
}

// updateParameter performs the plain SGD update: param -= lr * grad.
func (s *SGD[B]) updateParameter(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) {
	updated := param.Tensor().Sub(grad.MulScalar(s.lr))

	// Copy updated values back into the parameter tensor so every
	// reference to it (e.g. a conditioned engine) sees the new values.
	copy(param.Tensor().Data(), updated.Data())
}

// updateParameterWithMomentum performs the momentum update.
func (s *SGD[B]) updateParameterWithMomentum(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = tensor.Zeros[float32](param.Tensor().Shape(), s.backend)
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	newVelocity := velocity.MulScalar(s.momentum).Add(grad)
	copy(velocity.Data(), newVelocity.Data())

	// param -= lr * velocity
	updated := param.Tensor().Sub(velocity.MulScalar(s.lr))
	copy(param.Tensor().Data(), updated.Data())
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
