// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package flows provides invertible, differentiable vector-space
// transforms for building normalizing flows.
//
// # Overview
//
// A normalizing flow reshapes a simple base distribution into a richer
// one by pushing samples through a bijective map and correcting
// densities with the log-absolute-determinant of the Jacobian. This
// package contains:
//   - Transform: the bijector contract (forward, inverse, log det)
//   - Radial: the trainable radial transform y = x + βh(α, r)(x - x0)
//   - ConditionalRadial: radial parameters produced from a context
//     vector by a conditioner network
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/flows/backend/cpu"
//	    "github.com/born-ml/flows/flows"
//	    "github.com/born-ml/flows/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    transform := flows.NewRadial(2, backend)
//
//	    // Push base samples through the transform and score them.
//	    x := tensor.Randn[float32](tensor.Shape{128, 2}, backend)
//	    y := transform.Forward(x)
//	    logDet := transform.LogAbsDetJacobian(x, y)
//	    _ = logDet
//	}
//
// # Caching and Inversion
//
// The radial map has no closed-form inverse. Forward caches its (x, y)
// pair and log det, keyed by tensor identity, so the exact samples
// drawn can be scored without recomputation; Inverse always returns an
// error wrapping ErrNoCachedInverse. Instances are not safe for
// concurrent use.
package flows
