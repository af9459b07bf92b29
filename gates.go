package main

import (
	"math"
	"math/cmplx"
)

// GateParams holds the angles of the parametrized u3 rotation.
type GateParams struct {
	Theta  float64
	Phi    float64
	Lambda float64
}

// gateBuilder produces the elementary 2×2 unitary for one gate name.
type gateBuilder func(p *GateParams) (Matrix, error)

// pauliX is shared by x, cx and ccx: the engine derives controlled-ness
// from an instruction's target-list length, never from the name, so all
// three resolve to the same elementary matrix.
func pauliX(*GateParams) (Matrix, error) {
	return Matrix{
		{0, 1},
		{1, 0},
	}, nil
}

func hadamard(*GateParams) (Matrix, error) {
	h := complex(1/math.Sqrt2, 0)
	return Matrix{
		{h, h},
		{h, -h},
	}, nil
}

func u3(p *GateParams) (Matrix, error) {
	if p == nil {
		return nil, &UnknownGateError{Gate: "u3"}
	}
	cos := complex(math.Cos(p.Theta/2), 0)
	sin := complex(math.Sin(p.Theta/2), 0)
	return Matrix{
		{cos, -cmplx.Exp(complex(0, p.Lambda)) * sin},
		{cmplx.Exp(complex(0, p.Phi)) * sin, cmplx.Exp(complex(0, p.Lambda+p.Phi)) * cos},
	}, nil
}

// gateBuilders dispatches gate names to their matrix builders. New
// gates register here rather than in a central switch.
var gateBuilders = map[string]gateBuilder{
	"h":   hadamard,
	"x":   pauliX,
	"cx":  pauliX,
	"ccx": pauliX,
	"u3":  u3,
}

// GateMatrix resolves a gate name (and optional parameters) to its
// elementary 2×2 unitary. The matrix is 2×2 regardless of how many
// qubits the instruction targets; multi-qubit instructions embed it as
// the target action of the controlled construction in BuildOperator.
func GateMatrix(name string, params *GateParams) (Matrix, error) {
	build, ok := gateBuilders[name]
	if !ok {
		return nil, &UnknownGateError{Gate: name}
	}
	return build(params)
}
