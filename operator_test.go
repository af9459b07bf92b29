package main

import (
	"math/cmplx"
	"testing"
)

func TestBuildOperatorSingleQubitEmbedding(t *testing.T) {
	// With no controls the operator is the elementary gate tensored
	// with identities: on a 2-qubit register, X on qubit 0 swaps
	// amplitude pairs that differ in bit 0.
	x, _ := GateMatrix("x", nil)
	op := BuildOperator(2, x, []int{0})

	want := NewMatrix(4)
	want[0][1], want[1][0] = 1, 1
	want[2][3], want[3][2] = 1, 1
	if !matricesClose(op, want) {
		t.Errorf("X on q0 = %v, want %v", op, want)
	}
}

func TestBuildOperatorControlledX(t *testing.T) {
	// CX with control q0, target q1: bit 1 flips only where bit 0 is 1.
	x, _ := GateMatrix("x", nil)
	op := BuildOperator(2, x, []int{0, 1})

	want := NewMatrix(4)
	want[0][0] = 1
	want[2][2] = 1
	want[3][1] = 1
	want[1][3] = 1
	if !matricesClose(op, want) {
		t.Errorf("CX(0→1) = %v, want %v", op, want)
	}
}

func TestBuildOperatorInvolution(t *testing.T) {
	// Applying an involutive gate twice is the identity.
	for _, name := range []string{"x", "h"} {
		u, _ := GateMatrix(name, nil)
		op := BuildOperator(3, u, []int{1})

		state, err := GroundState(3)
		if err != nil {
			t.Fatal(err)
		}
		amps := op.MulVec(op.MulVec(state.Amplitudes))
		for i, amp := range amps {
			want := Complex(0)
			if i == 0 {
				want = 1
			}
			if cmplx.Abs(amp-want) > tolerance {
				t.Errorf("%s twice: amplitude[%d] = %v, want %v", name, i, amp, want)
			}
		}
	}
}

func TestBuildOperatorControlOrderIrrelevant(t *testing.T) {
	// Any permutation of the same control set yields the same
	// operator: each projector sits at its own qubit position.
	x, _ := GateMatrix("x", nil)
	a := BuildOperator(3, x, []int{0, 1, 2})
	b := BuildOperator(3, x, []int{1, 0, 2})
	if !matricesClose(a, b) {
		t.Errorf("control order changed the operator:\n%v\nvs\n%v", a, b)
	}
}

func TestBuildOperatorToffoli(t *testing.T) {
	// The Toffoli operator permutes exactly the |11x⟩ pair and fixes
	// the other six basis states.
	x, _ := GateMatrix("x", nil)
	op := BuildOperator(3, x, []int{0, 1, 2})

	for col := 0; col < 8; col++ {
		wantRow := col
		if col&3 == 3 { // both controls set: flip bit 2
			wantRow = col ^ 4
		}
		for row := 0; row < 8; row++ {
			want := Complex(0)
			if row == wantRow {
				want = 1
			}
			if cmplx.Abs(op[row][col]-want) > tolerance {
				t.Errorf("toffoli[%d][%d] = %v, want %v", row, col, op[row][col], want)
			}
		}
	}
}

func TestKron(t *testing.T) {
	a := Identity(2)
	b := Matrix{{0, 2}, {3, 0}}
	got := Kron(a, b)
	want := Matrix{
		{0, 2, 0, 0},
		{3, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 3, 0},
	}
	if !matricesClose(got, want) {
		t.Errorf("Kron(I, b) = %v, want %v", got, want)
	}
}
