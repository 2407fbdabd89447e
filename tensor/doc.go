// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the flows library.
//
// # Overview
//
// Tensors are the numeric substrate every transform operates on. This
// package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy views where possible
//   - Device abstraction behind the Backend interface
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/flows/tensor"
//	    "github.com/born-ml/flows/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Randn[float32](tensor.Shape{16, 3}, backend)
//	    mean := x.MeanDim(0, false)
//
//	    // Element-wise math
//	    y := x.Softplus().Log1p()
//	    _ = y
//	    _ = mean
//	}
//
// # Supported Data Types
//
// The DType constraint covers float32 and float64. Transform math is
// float32 end to end; float64 exists for reference computations.
package tensor
