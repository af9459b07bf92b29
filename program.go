package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	gateLineRegex  = regexp.MustCompile(`^(\w+)\s+(q\[\d+\](?:\s*,\s*q\[\d+\])*)\s*;?$`)
	paramGateRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `(?:\s*,\s*` + paramPattern + `)*)\s*\)\s+(q\[\d+\](?:\s*,\s*q\[\d+\])*)\s*;?$`)
	operandRegex   = regexp.MustCompile(`q\[(\d+)\]`)
	qregRegex      = regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`)
)

// Program is an ordered gate-instruction sequence over a fixed-size
// register. Instructions execute in slice order; there is no branching
// and no mid-program measurement.
type Program struct {
	NumQubits    int
	Instructions []Instruction
}

// parseOperands extracts the qubit indices from a "q[0], q[1]" list.
func parseOperands(s string) []int {
	matches := operandRegex.FindAllStringSubmatch(s, -1)
	qubits := make([]int, len(matches))
	for i, m := range matches {
		qubits[i], _ = strconv.Atoi(m[1])
	}
	return qubits
}

// ParseQASM rebuilds the program from a QASM 2.0 subset: qreg plus the
// supported gate set. Any gate line with multiple operands is read as
// controls followed by the acted qubit, matching the engine's
// convention. Measure, barrier and creg lines are ignored — the
// sampler measures every qubit from the final state.
func (p *Program) ParseQASM(qasm string) error {
	p.Instructions = nil

	for lineNum, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") ||
			strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "creg") ||
			strings.HasPrefix(line, "barrier") ||
			strings.HasPrefix(line, "measure") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if matches := qregRegex.FindStringSubmatch(line); len(matches) > 2 {
				n, _ := strconv.Atoi(matches[2])
				p.NumQubits = n
			}
			continue
		}

		// Parametrized gates: "u3(pi/2, 0, pi) q[0];"
		if matches := paramGateRegex.FindStringSubmatch(line); matches != nil {
			name := strings.ToLower(matches[1])
			params := parseParamList(matches[2])
			if len(params) != 3 {
				return fmt.Errorf("line %d: %s expects 3 parameters, got %d", lineNum+1, name, len(params))
			}
			p.Instructions = append(p.Instructions, Instruction{
				Gate:   name,
				Params: &GateParams{Theta: params[0], Phi: params[1], Lambda: params[2]},
				Target: parseOperands(matches[3]),
			})
			continue
		}

		// Plain gates: "h q[0];", "cx q[0], q[1];", "ccx q[0], q[1], q[2];"
		if matches := gateLineRegex.FindStringSubmatch(line); matches != nil {
			p.Instructions = append(p.Instructions, Instruction{
				Gate:   strings.ToLower(matches[1]),
				Target: parseOperands(matches[2]),
			})
			continue
		}

		return fmt.Errorf("line %d: cannot parse %q", lineNum+1, line)
	}

	return nil
}

// ToQASM generates QASM 2.0 output from the program.
func (p *Program) ToQASM() string {
	numQubits := p.NumQubits
	for _, inst := range p.Instructions {
		for _, q := range inst.Target {
			numQubits = max(numQubits, q+1)
		}
	}
	numQubits = max(numQubits, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", numQubits)

	for _, inst := range p.Instructions {
		if inst.Params != nil {
			fmt.Fprintf(&sb, "%s(%s, %s, %s) ", inst.Gate,
				formatParam(inst.Params.Theta),
				formatParam(inst.Params.Phi),
				formatParam(inst.Params.Lambda))
		} else {
			sb.WriteString(inst.Gate + " ")
		}
		for i, q := range inst.Target {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "q[%d]", q)
		}
		sb.WriteString(";\n")
	}

	return sb.String()
}

// Run simulates the program from the ground state and returns the
// final state vector.
func (p *Program) Run() (*StateVector, error) {
	numQubits := max(p.NumQubits, 1)
	state, err := GroundState(numQubits)
	if err != nil {
		return nil, err
	}
	return RunProgram(state, p.Instructions)
}
