// Package flows implements invertible, differentiable vector-space
// transforms ("normalizing flows") used to build richer probability
// distributions by composing simple base distributions with bijective
// maps.
//
// A Transform declares its support (domain/codomain), whether it is
// bijective, and its event dimension, and implements the forward map,
// the inverse map, and the log-absolute-determinant of the Jacobian.
// That is the contract a distribution-composition layer needs to chain
// transforms and apply log-likelihood corrections.
package flows

import (
	"errors"

	"github.com/born-ml/flows/internal/tensor"
)

// Constraint describes the support of a transform's domain or codomain.
type Constraint int

// Supported constraints.
const (
	// Real means the whole real vector space.
	Real Constraint = iota
)

// String returns a human-readable constraint name.
func (c Constraint) String() string {
	switch c {
	case Real:
		return "real"
	default:
		return "unknown"
	}
}

// ErrNoCachedInverse is returned by transforms whose inverse has no
// analytic form. Such transforms can only be "inverted" by an enclosing
// sampling mechanism that caches forward-pass intermediates and feeds
// them back for scoring; calling Inverse directly is a usage error.
var ErrNoCachedInverse = errors.New("flows: no cached forward result to invert")

// Transform is the bijector contract.
//
// Forward maps x to y and records (x, y) together with the per-element
// log-Jacobian in a one-entry cache so that LogAbsDetJacobian can be
// served without recomputation. Instances are not safe for concurrent
// use: the cache is mutated on every forward call, so callers must
// serialize access per instance or use distinct instances.
type Transform[B tensor.Backend] interface {
	// Domain returns the support of valid inputs.
	Domain() Constraint

	// Codomain returns the support of outputs.
	Codomain() Constraint

	// Bijective reports whether the transform is a bijection on its domain.
	Bijective() bool

	// EventDim returns the number of trailing dimensions the transform
	// operates on jointly. 1 means whole trailing vectors, not elements.
	EventDim() int

	// Forward computes y from x. The last dimension of x must match the
	// transform's input dimension; leading dimensions are batch dimensions.
	Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Inverse computes x from y, or returns an error (wrapping
	// ErrNoCachedInverse) when no analytic inverse exists.
	Inverse(y *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error)

	// LogAbsDetJacobian returns log|det J| of the forward map for each
	// batch element of the (x, y) pair produced by the last Forward call.
	// If the pair does not match the cached one (compared by tensor
	// identity, not value), the forward map is re-run on x first.
	LogAbsDetJacobian(x, y *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]
}

// ConditionalTransform resolves a concrete Transform from a context
// vector. The wrapper itself is stateless; every Condition call returns
// a fresh Transform with its own independent cache.
type ConditionalTransform[B tensor.Backend] interface {
	// Domain, Codomain, Bijective and EventDim describe every transform
	// the wrapper can produce.
	Domain() Constraint
	Codomain() Constraint
	Bijective() bool
	EventDim() int

	// Condition resolves the context into a concrete Transform.
	Condition(context *tensor.Tensor[float32, B]) Transform[B]
}
