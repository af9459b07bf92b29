package main

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestGroundState(t *testing.T) {
	for n := 1; n <= 5; n++ {
		s, err := GroundState(n)
		if err != nil {
			t.Fatalf("GroundState(%d): %v", n, err)
		}
		if len(s.Amplitudes) != 1<<n {
			t.Fatalf("GroundState(%d): length %d, want %d", n, len(s.Amplitudes), 1<<n)
		}
		for i, amp := range s.Amplitudes {
			want := Complex(0)
			if i == 0 {
				want = 1
			}
			if amp != want {
				t.Errorf("GroundState(%d): amplitude[%d] = %v, want %v", n, i, amp, want)
			}
		}
	}
}

func TestGroundStateInvalidCount(t *testing.T) {
	var invalidErr *InvalidQubitCountError
	for _, n := range []int{0, -1, -7} {
		_, err := GroundState(n)
		if !errors.As(err, &invalidErr) {
			t.Errorf("GroundState(%d): expected InvalidQubitCountError, got %v", n, err)
		}
	}
}

func TestControlledXOnGroundStateIsIdentity(t *testing.T) {
	// Control qubit 0 is 0 in the ground state, so CX must not fire.
	state, _ := GroundState(2)
	out, err := RunProgram(state, []Instruction{
		{Gate: "x", Target: []int{0, 1}},
	})
	if err != nil {
		t.Fatalf("RunProgram: %v", err)
	}
	for i, amp := range out.Amplitudes {
		want := Complex(0)
		if i == 0 {
			want = 1
		}
		if cmplx.Abs(amp-want) > tolerance {
			t.Errorf("amplitude[%d] = %v, want %v", i, amp, want)
		}
	}
}

func TestBellPair(t *testing.T) {
	// u3(−π/2, 0, 0) puts qubit 0 into equal superposition; the CX
	// then entangles: support on |00⟩ and |11⟩ only.
	state, _ := GroundState(2)
	out, err := RunProgram(state, []Instruction{
		{Gate: "u3", Params: &GateParams{Theta: -math.Pi / 2}, Target: []int{0}},
		{Gate: "x", Target: []int{0, 1}},
	})
	if err != nil {
		t.Fatalf("RunProgram: %v", err)
	}

	probs := out.Probabilities()
	if math.Abs(probs[0]-0.5) > 1e-9 || math.Abs(probs[3]-0.5) > 1e-9 {
		t.Errorf("p(|00⟩)=%g p(|11⟩)=%g, want 0.5 each", probs[0], probs[3])
	}
	if probs[1] > 1e-9 || probs[2] > 1e-9 {
		t.Errorf("p(|01⟩ label)=%g p(|10⟩ label)=%g, want 0", probs[1], probs[2])
	}
}

func TestToffoliFiresOnlyWithBothControls(t *testing.T) {
	state, _ := GroundState(3)
	out, err := RunProgram(state, []Instruction{
		{Gate: "x", Target: []int{0}},
		{Gate: "x", Target: []int{1}},
		{Gate: "ccx", Target: []int{0, 1, 2}},
	})
	if err != nil {
		t.Fatalf("RunProgram: %v", err)
	}
	// All three qubits set: basis index 7.
	if cmplx.Abs(out.Amplitudes[7]-1) > tolerance {
		t.Errorf("amplitude[7] = %v, want 1", out.Amplitudes[7])
	}
}

func TestRunProgramValidatesBeforeExecuting(t *testing.T) {
	// The out-of-range target occurs after a valid instruction, but
	// validation is exhaustive and rejects the run up front.
	state, _ := GroundState(2)
	out, err := RunProgram(state, []Instruction{
		{Gate: "h", Target: []int{0}},
		{Gate: "x", Target: []int{5}},
	})
	var rangeErr *TargetOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected TargetOutOfRangeError, got %v", err)
	}
	if rangeErr.Qubit != 5 {
		t.Errorf("error names qubit %d, want 5", rangeErr.Qubit)
	}
	if out != nil {
		t.Errorf("expected no partial state on failure, got %v", out)
	}
	if state.Amplitudes[0] != 1 {
		t.Errorf("input state mutated: %v", state.Amplitudes)
	}
}

func TestRunProgramUnknownGateIsAtomic(t *testing.T) {
	state, _ := GroundState(1)
	out, err := RunProgram(state, []Instruction{
		{Gate: "h", Target: []int{0}},
		{Gate: "bogus", Target: []int{0}},
	})
	var unknownErr *UnknownGateError
	if !errors.As(err, &unknownErr) || unknownErr.Gate != "bogus" {
		t.Fatalf("expected UnknownGateError for bogus, got %v", err)
	}
	if out != nil {
		t.Errorf("expected no partial state on failure, got %v", out)
	}
}

func TestRunProgramLeavesInputUntouched(t *testing.T) {
	state, _ := GroundState(1)
	out, err := RunProgram(state, []Instruction{
		{Gate: "x", Target: []int{0}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if state.Amplitudes[0] != 1 || state.Amplitudes[1] != 0 {
		t.Errorf("input state mutated: %v", state.Amplitudes)
	}
	if cmplx.Abs(out.Amplitudes[1]-1) > tolerance {
		t.Errorf("output amplitude[1] = %v, want 1", out.Amplitudes[1])
	}
}
