package main

import (
	"fmt"
	"math/bits"
)

// Instruction is one gate application: the gate name, its optional
// rotation angles, and an ordered qubit list. With k+1 targets the
// first k are control qubits and the last is the acted-upon qubit.
type Instruction struct {
	Gate   string
	Params *GateParams // nil for gates without parameters
	Target []int
}

// StateVector holds the 2^NumQubits complex amplitudes of a register,
// indexed by basis-state integer.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// GroundState returns the |0…0⟩ state on numQubits qubits: amplitude 1
// at index 0, 0 elsewhere.
func GroundState(numQubits int) (*StateVector, error) {
	if numQubits <= 0 {
		return nil, &InvalidQubitCountError{NumQubits: numQubits}
	}
	amps := make([]Complex, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// validateProgram checks every instruction before anything executes,
// so a later-occurring invalid target aborts the whole run up front.
func validateProgram(numQubits int, program []Instruction) error {
	for i, inst := range program {
		if len(inst.Target) == 0 {
			return fmt.Errorf("instruction %d (%s): no target qubits", i, inst.Gate)
		}
		for _, q := range inst.Target {
			if q < 0 || q >= numQubits {
				return &TargetOutOfRangeError{Qubit: q, NumQubits: numQubits}
			}
		}
	}
	return nil
}

// RunProgram applies the program to the initial state in order and
// returns the final state vector. The register size is inferred from
// the vector length. Execution is all-or-nothing: validation and gate
// resolution failures return before any amplitude changes, and the
// input vector is never mutated.
func RunProgram(initial *StateVector, program []Instruction) (*StateVector, error) {
	numQubits := bits.Len(uint(len(initial.Amplitudes))) - 1
	if err := validateProgram(numQubits, program); err != nil {
		return nil, err
	}

	// Resolve every elementary matrix before touching amplitudes so a
	// bad gate name late in the program cannot leave a partial result.
	elementary := make([]Matrix, len(program))
	for i, inst := range program {
		u, err := GateMatrix(inst.Gate, inst.Params)
		if err != nil {
			return nil, err
		}
		elementary[i] = u
	}

	amps := make([]Complex, len(initial.Amplitudes))
	copy(amps, initial.Amplitudes)

	for i, inst := range program {
		op := BuildOperator(numQubits, elementary[i], inst.Target)
		amps = op.MulVec(amps)
	}
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}
