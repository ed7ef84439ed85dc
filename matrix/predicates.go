// SPDX-License-Identifier: MIT

package matrix

// IsSquare reports Rows == Cols.
func (m *Matrix[E, Q]) IsSquare() bool { return m.r == m.c }

// IsUpperTriangular reports that every element below the diagonal is zero.
func (m *Matrix[E, Q]) IsUpperTriangular() bool {
	return m.allZero(func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports that every element above the diagonal is zero.
func (m *Matrix[E, Q]) IsLowerTriangular() bool {
	return m.allZero(func(i, j int) bool { return i < j })
}

// IsTriangular reports upper or lower triangularity.
func (m *Matrix[E, Q]) IsTriangular() bool {
	return m.IsUpperTriangular() || m.IsLowerTriangular()
}

// IsDiagonal reports that every off-diagonal element is zero.
func (m *Matrix[E, Q]) IsDiagonal() bool {
	return m.IsUpperTriangular() && m.IsLowerTriangular()
}

// IsIdentity reports a square diagonal matrix with ones on the diagonal.
func (m *Matrix[E, Q]) IsIdentity() bool {
	if !m.IsSquare() || !m.IsDiagonal() {
		return false
	}
	one := m.f.One()
	for _, d := range m.DiagonalElements() {
		if !m.f.Equal(d, one) {
			return false
		}
	}
	return true
}

// IsSymmetric reports m == mᵀ.
func (m *Matrix[E, Q]) IsSymmetric() bool {
	return m.IsSquare() && m.EqualByComparing(m.Transpose())
}

// IsSkewSymmetric reports mᵀ == -m.
func (m *Matrix[E, Q]) IsSkewSymmetric() bool {
	return m.IsSquare() && m.Transpose().EqualByComparing(m.Negate())
}

// allZero reports whether every cell selected by pick (1-based) is zero.
func (m *Matrix[E, Q]) allZero(pick func(i, j int) bool) bool {
	zero := m.f.Zero()
	for i := 1; i <= m.r; i++ {
		for j := 1; j <= m.c; j++ {
			if pick(i, j) && !m.f.Equal(m.data[(i-1)*m.c+(j-1)], zero) {
				return false
			}
		}
	}
	return true
}
