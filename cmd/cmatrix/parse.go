package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cmatrix/cplx"
	"github.com/katalvlaran/cmatrix/matrix"
)

// parseComplexList parses comma-separated complex literals ("1+2i", "-3", "0.5i").
func parseComplexList(s string) ([]cplx.Complex[float64], error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]cplx.Complex[float64], 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseComplex(strings.TrimSpace(part), 128)
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i, part, err)
		}
		out = append(out, cplx.From(real(v), imag(v)))
	}

	return out, nil
}

// parseMatrix builds a rows×cols matrix from a row-major literal list.
func parseMatrix(rows, cols int, s string) (*matrix.Matrix[float64], error) {
	values, err := parseComplexList(s)
	if err != nil {
		return nil, err
	}
	m, err := matrix.FromArray(rows, cols, values)
	if err != nil {
		return nil, fmt.Errorf("%dx%d matrix from %d values: %w", rows, cols, len(values), err)
	}

	return m, nil
}

// parseVectors parses semicolon-separated vectors, each a comma-separated list.
func parseVectors(s string) ([]*matrix.Vector[float64], error) {
	var out []*matrix.Vector[float64]
	for i, chunk := range strings.Split(s, ";") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		values, err := parseComplexList(chunk)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out = append(out, matrix.VectorFromSlice(values))
	}

	return out, nil
}
