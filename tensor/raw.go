// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/flows/internal/tensor"

// RawTensor is the low-level tensor representation: a flat buffer plus
// shape, strides and runtime type information.
//
// Most users should work with the generic Tensor type; RawTensor exists
// for backend implementations and advanced zero-copy manipulation.
type RawTensor = tensor.RawTensor
