package main

import "strconv"

// BasisLabel returns the width-digit binary label of a basis-state
// index, reversed so that position q of the label holds the classical
// bit of qubit q (qubit 0 is the least-significant bit of the index).
// The caller must guarantee 0 <= value < 2^width; larger values are a
// precondition violation and the label is unspecified.
func BasisLabel(value, width int) string {
	buf := make([]byte, width)
	for q := 0; q < width; q++ {
		buf[q] = '0' + byte(value>>q&1)
	}
	return string(buf)
}

// ParseBasisLabel is the inverse of BasisLabel: it reverses the label
// back into natural binary order and parses it as a basis-state index.
func ParseBasisLabel(label string) (int, error) {
	rev := make([]byte, len(label))
	for i := range rev {
		rev[i] = label[len(label)-1-i]
	}
	v, err := strconv.ParseInt(string(rev), 2, 64)
	return int(v), err
}
