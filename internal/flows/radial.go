package flows

import (
	"fmt"
	"math"

	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/tensor"
)

// ConditionedRadial applies the radial bijection
//
//	y = x + βh(α, r)(x - x0)
//
// where r = ||x - x0||₂ along the last dimension, h(α, r) = 1/(α + r),
// and the concrete α > 0 and β > -α are derived from unconstrained
// pre-parameters each forward pass:
//
//	α = softplus(alphaPrime)
//	β = softplus(betaPrime) - α
//
// The reparameterization is what guarantees the invertibility condition
// β > -α for every pre-parameter value: β + α = softplus(betaPrime) > 0.
//
// The transform has no analytic inverse. Forward caches (x, y) and the
// per-batch-element log-Jacobian, keyed by tensor identity, so that a
// sampling mechanism can score the exact samples it drew. The cache
// holds exactly one entry and is overwritten on every forward call.
type ConditionedRadial[B tensor.Backend] struct {
	x0         *tensor.Tensor[float32, B] // [..., D]
	alphaPrime *tensor.Tensor[float32, B] // [..., 1]
	betaPrime  *tensor.Tensor[float32, B] // [..., 1]

	cachedX      *tensor.Tensor[float32, B]
	cachedY      *tensor.Tensor[float32, B]
	cachedLogDet *tensor.Tensor[float32, B]
}

// NewConditionedRadial creates a radial transform bound to concrete
// parameter values. x0 has shape [..., D]; alphaPrime and betaPrime
// have shape [..., 1].
func NewConditionedRadial[B tensor.Backend](x0, alphaPrime, betaPrime *tensor.Tensor[float32, B]) *ConditionedRadial[B] {
	return &ConditionedRadial[B]{
		x0:         x0,
		alphaPrime: alphaPrime,
		betaPrime:  betaPrime,
	}
}

// Domain returns the support of valid inputs: all reals.
func (t *ConditionedRadial[B]) Domain() Constraint { return Real }

// Codomain returns the support of outputs: all reals.
func (t *ConditionedRadial[B]) Codomain() Constraint { return Real }

// Bijective reports true: β > -α holds by construction.
func (t *ConditionedRadial[B]) Bijective() bool { return true }

// EventDim returns 1: the transform operates on whole trailing vectors.
func (t *ConditionedRadial[B]) EventDim() int { return 1 }

// Forward computes y = x + βh·(x - x0) and refreshes the cache.
//
// x must have last dimension D matching x0; leading dimensions form an
// arbitrary batch shape. If the dimensions disagree, the tensor layer's
// broadcasting check fails (a caller-contract violation, not a
// recoverable condition).
func (t *ConditionedRadial[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	y, logDet := t.call(x)

	t.cachedX = x
	t.cachedY = y
	t.cachedLogDet = logDet

	return y
}

// call evaluates the map and the log-Jacobian from one shared
// intermediate computation, so the cached pair is always consistent.
func (t *ConditionedRadial[B]) call(x *tensor.Tensor[float32, B]) (y, logDet *tensor.Tensor[float32, B]) {
	// Constrained parameters from the unconstrained pre-parameters.
	alpha := t.alphaPrime.Softplus()
	beta := t.betaPrime.Softplus().Sub(alpha)

	diff := x.Sub(t.x0)          // [..., D]
	r := diff.Norm(-1, true)     // [..., 1]
	h := alpha.Add(r).Reciprocal()
	hPrime := h.Mul(h).Neg()
	betaH := beta.Mul(h) // [..., 1]

	dim := t.x0.Shape()
	d := dim[len(dim)-1]

	// log|det J| = (D-1)·log1p(βh) + log1p(βh + βh'r), summed over the
	// trailing size-1 dimension. The (D-1) factor folds the D-1 equal
	// eigenvalues of the rank-1-perturbed identity Jacobian.
	logDet = betaH.Log1p().MulScalar(float32(d - 1)).
		Add(betaH.Add(beta.Mul(hPrime).Mul(r)).Log1p()).
		SumDim(-1, false)

	y = x.Add(betaH.Mul(diff))
	return y, logDet
}

// Inverse always fails: the radial map has no closed-form inverse.
//
// Correct usage relies on an enclosing sampling mechanism that caches
// forward-pass intermediates and supplies them back for scoring; this
// method exists only to satisfy the Transform interface.
func (t *ConditionedRadial[B]) Inverse(y *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	return nil, fmt.Errorf("conditioned radial: %w", ErrNoCachedInverse)
}

// LogAbsDetJacobian returns the per-batch-element log|det J| for the
// (x, y) pair of the most recent forward call.
//
// The pair is checked by tensor identity, not value equality: distinct
// tensors holding equal values are a cache miss. On a miss the forward
// map is re-run on x, refreshing the cache; y is then taken to be
// consistent with the fresh result, so callers must never pass an
// (x, y) pair from a different invocation.
func (t *ConditionedRadial[B]) LogAbsDetJacobian(x, y *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if x != t.cachedX || y != t.cachedY {
		t.Forward(x)
	}
	return t.cachedLogDet
}

// Radial is the trainable radial transform: it owns the three
// parameters for a fixed input dimension D and delegates all math to
// the conditioned engine.
//
//	transform := flows.NewRadial(10, backend)
//	y := transform.Forward(x)
//	logDet := transform.LogAbsDetJacobian(x, y)
//
// Parameters are initialized from U(-1/√D, 1/√D) and exposed through
// Parameters() for gradient-based training.
type Radial[B tensor.Backend] struct {
	*ConditionedRadial[B]

	inputDim   int
	x0         *nn.Parameter[B]
	alphaPrime *nn.Parameter[B]
	betaPrime  *nn.Parameter[B]
}

// NewRadial creates a trainable radial transform for the given input
// (and output) dimension.
func NewRadial[B tensor.Backend](inputDim int, backend B) *Radial[B] {
	if inputDim <= 0 {
		panic(fmt.Sprintf("radial: invalid input dim %d", inputDim))
	}

	bound := float32(1.0 / math.Sqrt(float64(inputDim)))
	x0 := nn.NewParameter("x0", nn.Uniform(tensor.Shape{inputDim}, bound, backend))
	alphaPrime := nn.NewParameter("alpha_prime", nn.Uniform(tensor.Shape{1}, bound, backend))
	betaPrime := nn.NewParameter("beta_prime", nn.Uniform(tensor.Shape{1}, bound, backend))

	return &Radial[B]{
		ConditionedRadial: NewConditionedRadial(x0.Tensor(), alphaPrime.Tensor(), betaPrime.Tensor()),
		inputDim:          inputDim,
		x0:                x0,
		alphaPrime:        alphaPrime,
		betaPrime:         betaPrime,
	}
}

// InputDim returns the dimension of the input (and output) variable.
func (t *Radial[B]) InputDim() int {
	return t.inputDim
}

// Parameters returns the trainable parameters: x0, alpha_prime, beta_prime.
func (t *Radial[B]) Parameters() []*nn.Parameter[B] {
	return []*nn.Parameter[B]{t.x0, t.alphaPrime, t.betaPrime}
}

// ResetParameters redraws all parameters from U(-1/√D, 1/√D) in place.
// The conditioned engine keeps referencing the same tensors.
func (t *Radial[B]) ResetParameters() {
	bound := float32(1.0 / math.Sqrt(float64(t.inputDim)))
	for _, p := range t.Parameters() {
		fresh := nn.Uniform(p.Tensor().Shape(), bound, p.Tensor().Backend())
		copy(p.Tensor().Data(), fresh.Data())
	}
}
