package main

type Complex = complex128

// Matrix is a dense square complex matrix, row-major.
type Matrix [][]Complex

// NewMatrix returns a zero dim×dim matrix.
func NewMatrix(dim int) Matrix {
	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]Complex, dim)
	}
	return m
}

// Identity returns the dim×dim identity matrix.
func Identity(dim int) Matrix {
	m := NewMatrix(dim)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Kron returns the Kronecker product a⊗b. The left factor indexes the
// high-order bits of the result, so composing with the new qubit's
// matrix on the left keeps qubit q on bit q of the basis index.
func Kron(a, b Matrix) Matrix {
	an, bn := len(a), len(b)
	out := NewMatrix(an * bn)
	for ai := 0; ai < an; ai++ {
		for aj := 0; aj < an; aj++ {
			f := a[ai][aj]
			if f == 0 {
				continue
			}
			for bi := 0; bi < bn; bi++ {
				for bj := 0; bj < bn; bj++ {
					out[ai*bn+bi][aj*bn+bj] = f * b[bi][bj]
				}
			}
		}
	}
	return out
}

// AddInPlace accumulates o into m. Dimensions must match.
func (m Matrix) AddInPlace(o Matrix) {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
}

// MulVec returns m × v as a new vector.
func (m Matrix) MulVec(v []Complex) []Complex {
	out := make([]Complex, len(m))
	for i, row := range m {
		var sum Complex
		for j, a := range row {
			if a != 0 {
				sum += a * v[j]
			}
		}
		out[i] = sum
	}
	return out
}
