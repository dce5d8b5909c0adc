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

// MeanIncrementor maintains a running arithmetic mean over the values
// absorbed so far.
type MeanIncrementor[F Float] struct {
	mean  F
	count uint64
}

// NewMeanIncrementor creates an empty mean accumulator.
func NewMeanIncrementor[F Float]() MeanIncrementor[F] {
	return MeanIncrementor[F]{}
}

// Update folds another value into the mean. The new value carries a weight
// of 1/(count+1); the accumulated mean keeps the remainder.
func (m *MeanIncrementor[F]) Update(x F) {
	if m.count == 0 {
		// the first value defines the mean exactly
		m.mean = x
	} else {
		w := 1 / F(m.count+1)
		m.mean = m.mean*(1-w) + x*w
	}
	m.count++
}

// GetCount returns the number of values absorbed so far.
func (m *MeanIncrementor[F]) GetCount() uint64 {
	return m.count
}

// GetMean returns the current running mean, 0 before any value was absorbed.
func (m *MeanIncrementor[F]) GetMean() F {
	return m.mean
}
