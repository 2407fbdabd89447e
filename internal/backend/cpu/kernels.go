package cpu

import (
	"github.com/born-ml/flows/internal/tensor"
)

// applyBinary executes an element-wise binary op on typed slices,
// taking the fast contiguous path when no broadcasting is needed.
func applyBinary[T tensor.DType](op binOp, dst, a, b []T, aShape, bShape, outShape tensor.Shape, needsBroadcast bool) {
	if !needsBroadcast {
		switch op {
		case opAdd:
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
		case opSub:
			for i := range dst {
				dst[i] = a[i] - b[i]
			}
		case opMul:
			for i := range dst {
				dst[i] = a[i] * b[i]
			}
		case opDiv:
			for i := range dst {
				dst[i] = a[i] / b[i]
			}
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		av := a[flatIndex(i, outStrides, aStrides)]
		bv := b[flatIndex(i, outStrides, bStrides)]
		switch op {
		case opAdd:
			dst[i] = av + bv
		case opSub:
			dst[i] = av - bv
		case opMul:
			dst[i] = av * bv
		case opDiv:
			dst[i] = av / bv
		}
	}
}

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of size 1 (and padded leading dimensions) get stride 0 so that
// the same source element is reused across the broadcast axis.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat index in a (possibly
// broadcast) source array.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// transposeData permutes src into dst according to axes.
func transposeData[T tensor.DType](dst, src []T, srcShape tensor.Shape, axes []int) {
	ndim := len(srcShape)
	srcStrides := srcShape.ComputeStrides()

	dstShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		dstShape[i] = srcShape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	for i := range dst {
		// Decompose the destination index into coordinates, then map each
		// coordinate back through the axis permutation.
		rem := i
		srcIdx := 0
		for d := 0; d < ndim; d++ {
			coord := rem / dstStrides[d]
			rem %= dstStrides[d]
			srcIdx += coord * srcStrides[axes[d]]
		}
		dst[i] = src[srcIdx]
	}
}
