package main

// 2×2 building blocks for operator synthesis.
var (
	identity2  = Matrix{{1, 0}, {0, 1}}
	projector0 = Matrix{{1, 0}, {0, 0}} // |0⟩⟨0|
	projector1 = Matrix{{0, 0}, {0, 1}} // |1⟩⟨1|
)

// qubitFactor classifies one qubit position for a fixed control
// pattern and returns the 2×2 factor that position contributes to the
// Kronecker product: a basis projector on control qubits (bit i of the
// pattern gates control i, matching the BasisLabel bit order), the
// elementary unitary on the acted qubit when every control bit is set,
// and identity everywhere else.
func qubitFactor(q int, controls []int, acted, pattern, allOnes int, u Matrix) Matrix {
	for i, cq := range controls {
		if cq == q {
			if pattern>>i&1 == 1 {
				return projector1
			}
			return projector0
		}
	}
	if q == acted && pattern == allOnes {
		return u
	}
	return identity2
}

// BuildOperator constructs the full 2^n×2^n unitary for one
// instruction. The last target index is the qubit the elementary
// unitary acts on; any preceding indices are control qubits. The
// operator is the sum over all 2^k control patterns of a per-qubit
// Kronecker product assembled in ascending qubit-index order, so with
// no controls it reduces to the elementary gate tensored with
// identities, and with k ≥ 1 only the all-ones pattern applies the
// gate while every other pattern leaves its control subspace intact.
// Control projectors sit at fixed qubit positions, so permuting the
// control list leaves the result unchanged; that is intentional.
// Target validity is the caller's responsibility (see RunProgram).
func BuildOperator(numQubits int, u Matrix, target []int) Matrix {
	controls := target[:len(target)-1]
	acted := target[len(target)-1]
	allOnes := 1<<len(controls) - 1

	op := NewMatrix(1 << numQubits)
	for pattern := 0; pattern <= allOnes; pattern++ {
		term := Matrix{{1}}
		for q := 0; q < numQubits; q++ {
			term = Kron(qubitFactor(q, controls, acted, pattern, allOnes, u), term)
		}
		op.AddInPlace(term)
	}
	return op
}
