// Copyright 2026 The ml-math Authors
// This file is part of the incrementor library.
//
// incrementor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// incrementor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with incrementor. If not, see <http://www.gnu.org/licenses/>.

package incrementor

import "math"

// VarianceIncrementor maintains a running variance over the values absorbed
// so far, using the incremental formulation discussed in
// http://math.stackexchange.com/questions/102978/incremental-computation-of-standard-deviation.
// The tracked quantity is the Bessel-corrected sample variance; it stays 0
// until at least two values have been absorbed.
//
// Mean and count live in an owned MeanIncrementor and are never duplicated
// here.
type VarianceIncrementor[F Float] struct {
	variance F
	mean     MeanIncrementor[F]
}

// NewVarianceIncrementor creates an empty variance accumulator with a fresh
// owned mean accumulator.
func NewVarianceIncrementor[F Float]() VarianceIncrementor[F] {
	return VarianceIncrementor[F]{mean: NewMeanIncrementor[F]()}
}

// Update folds another value into the variance and the owned mean. The
// recurrence is defined against the mean as it was before this value, so the
// previous mean and count must be captured before the mean advances.
func (v *VarianceIncrementor[F]) Update(x F) {
	n := v.mean.count
	prev := v.mean.mean
	v.mean.Update(x)

	if n == 0 {
		v.variance = 0
		return
	}
	d := x - prev
	v.variance = F(n-1)/F(n)*v.variance + d*d/F(n+1)
}

// GetCount returns the number of values absorbed so far.
func (v *VarianceIncrementor[F]) GetCount() uint64 {
	return v.mean.GetCount()
}

// GetMean returns the running mean held by the owned mean accumulator.
func (v *VarianceIncrementor[F]) GetMean() F {
	return v.mean.GetMean()
}

// GetVariance returns the current running variance, 0 while fewer than two
// values have been absorbed.
func (v *VarianceIncrementor[F]) GetVariance() F {
	return v.variance
}

// GetStandardDeviation returns the square root of the current variance.
func (v *VarianceIncrementor[F]) GetStandardDeviation() F {
	return F(math.Sqrt(float64(v.variance)))
}
