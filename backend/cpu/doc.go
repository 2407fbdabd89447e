// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - The full math surface needed by radial transforms: softplus,
//     log1p, reciprocal, reductions and matrix multiplication
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
//	    transform := flows.NewRadial(3, backend)
//
//	    x := tensor.Randn[float32](tensor.Shape{3}, backend)
//	    y := transform.Forward(x)
//	    logDet := transform.LogAbsDetJacobian(x, y)
//	    _ = logDet
//	}
package cpu
