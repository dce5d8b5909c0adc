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

// Package incrementor provides composable streaming estimators for the mean
// and variance of a sequence of values fed in one value at a time. Neither
// estimator retains the values it has absorbed.
//
// The accumulators hold plain value state and perform no synchronization;
// callers updating one from multiple goroutines must serialize access
// themselves.
package incrementor

// Float is the set of floating-point widths the accumulators operate on.
type Float interface {
	~float32 | ~float64
}

// Interface for any incremental estimator implementation
type Incrementor[F Float] interface {
	Update(x F)

	GetCount() uint64
	GetMean() F
}

var (
	_ Incrementor[float32] = (*MeanIncrementor[float32])(nil)
	_ Incrementor[float64] = (*MeanIncrementor[float64])(nil)
	_ Incrementor[float32] = (*VarianceIncrementor[float32])(nil)
	_ Incrementor[float64] = (*VarianceIncrementor[float64])(nil)
)
