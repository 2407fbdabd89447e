// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/optim"
	"github.com/born-ml/flows/internal/tensor"
)

// Optimizer is the common interface for parameter optimizers.
type Optimizer[B tensor.Backend] = optim.Optimizer[B]

// SGD implements Stochastic Gradient Descent with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
//
// Example:
//
//	backend := cpu.New()
//	transform := flows.NewRadial(3, backend)
//	sgd := optim.NewSGD(transform.Parameters(), optim.SGDConfig{LR: 0.05}, backend)
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	return optim.NewSGD(params, config, backend)
}
