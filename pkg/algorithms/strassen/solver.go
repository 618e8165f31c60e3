package strassen

import (
	"context"
	"fmt"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Name is the registry name of this solver.
const Name = "strassen"

// Input holds the two square matrices to multiply. Dimensions must match;
// power-of-2 sizing is a caller responsibility and is not validated here.
type Input struct {
	A [][]int `json:"matrixA" mapstructure:"matrixA"`
	B [][]int `json:"matrixB" mapstructure:"matrixB"`
}

func (in Input) validate() error {
	if len(in.A) == 0 || len(in.B) == 0 {
		return domain.InvalidInput("matrixA", "matrices must not be empty")
	}
	if len(in.A) != len(in.B) {
		return domain.InvalidInput("matrixB", fmt.Sprintf("dimension %d does not match matrixA dimension %d", len(in.B), len(in.A)))
	}
	for i, row := range in.A {
		if len(row) != len(in.A) {
			return domain.InvalidInput("matrixA", fmt.Sprintf("row %d has %d columns, want %d", i, len(row), len(in.A)))
		}
	}
	for i, row := range in.B {
		if len(row) != len(in.B) {
			return domain.InvalidInput("matrixB", fmt.Sprintf("row %d has %d columns, want %d", i, len(row), len(in.B)))
		}
	}
	return nil
}

type solveState struct {
	rec *domain.Recorder
}

// Solve multiplies the matrices with Strassen's method. The 1x1 base case
// is a scalar multiply; 2x2 is a fully unrolled seven-product computation
// emitting one step per product plus one combine step; larger sizes quarter
// the matrices recursively and combine via
// C11 = M1+M4-M5+M7, C12 = M3+M5, C21 = M2+M4, C22 = M1-M2+M3+M6.
func Solve(ctx context.Context, in Input) (*domain.Trace, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s := &solveState{rec: domain.NewRecorder()}
	result := s.multiply(in.A, in.B, "C")

	s.rec.Emit(domain.Step{
		Kind:           domain.StepDone,
		Target:         domain.Coord{Quadrant: "C"},
		MatrixSnapshot: domain.CloneTable(result),
		Description:    fmt.Sprintf("Product matrix complete (%dx%d)", len(result), len(result)),
	})

	return &domain.Trace{
		Algorithm: Name,
		Steps:     s.rec.Steps(),
		Table:     result,
		Stats:     *s.rec.Stats(),
	}, nil
}

func (s *solveState) multiply(a, b [][]int, quadrant string) [][]int {
	n := len(a)

	if n == 1 {
		s.rec.Stats().Products++
		v := a[0][0] * b[0][0]
		s.rec.Emit(domain.Step{
			Kind:        domain.StepProduct,
			Target:      domain.Coord{Quadrant: quadrant},
			Value:       domain.IntPtr(v),
			Description: fmt.Sprintf("%s: scalar base case %d * %d = %d", quadrant, a[0][0], b[0][0], v),
		})
		return [][]int{{v}}
	}

	if n == 2 {
		return s.multiply2x2(a, b, quadrant)
	}

	half := n / 2
	a11, a12, a21, a22 := split(a, half)
	b11, b12, b21, b22 := split(b, half)

	products := []struct {
		name    string
		formula string
		left    [][]int
		right   [][]int
	}{
		{"M1", "(A11+A22)(B11+B22)", add(a11, a22), add(b11, b22)},
		{"M2", "(A21+A22)B11", add(a21, a22), b11},
		{"M3", "A11(B12-B22)", a11, sub(b12, b22)},
		{"M4", "A22(B21-B11)", a22, sub(b21, b11)},
		{"M5", "(A11+A12)B22", add(a11, a12), b22},
		{"M6", "(A21-A11)(B11+B12)", sub(a21, a11), add(b11, b12)},
		{"M7", "(A12-A22)(B21+B22)", sub(a12, a22), add(b21, b22)},
	}

	m := make([][][]int, len(products))
	for i, p := range products {
		s.rec.Stats().RecursiveCalls++
		s.rec.Emit(domain.Step{
			Kind:        domain.StepCall,
			Target:      domain.Coord{Quadrant: quadrant + "." + p.name},
			Description: fmt.Sprintf("%s: recurse into %s = %s at size %dx%d", quadrant, p.name, p.formula, half, half),
		})
		m[i] = s.multiply(p.left, p.right, quadrant+"."+p.name)
	}

	c11 := add(sub(add(m[0], m[3]), m[4]), m[6])
	c12 := add(m[2], m[4])
	c21 := add(m[1], m[3])
	c22 := add(add(sub(m[0], m[1]), m[2]), m[5])
	result := join(c11, c12, c21, c22)

	s.rec.Emit(domain.Step{
		Kind:           domain.StepCombine,
		Target:         domain.Coord{Quadrant: quadrant},
		MatrixSnapshot: domain.CloneTable(result),
		Description:    fmt.Sprintf("%s: combine C11=M1+M4-M5+M7, C12=M3+M5, C21=M2+M4, C22=M1-M2+M3+M6", quadrant),
	})
	return result
}

// multiply2x2 computes the seven products with literal formulas.
func (s *solveState) multiply2x2(a, b [][]int, quadrant string) [][]int {
	m1 := (a[0][0] + a[1][1]) * (b[0][0] + b[1][1])
	m2 := (a[1][0] + a[1][1]) * b[0][0]
	m3 := a[0][0] * (b[0][1] - b[1][1])
	m4 := a[1][1] * (b[1][0] - b[0][0])
	m5 := (a[0][0] + a[0][1]) * b[1][1]
	m6 := (a[1][0] - a[0][0]) * (b[0][0] + b[0][1])
	m7 := (a[0][1] - a[1][1]) * (b[1][0] + b[1][1])

	steps := []struct {
		name    string
		formula string
		value   int
	}{
		{"M1", "(a11+a22)(b11+b22)", m1},
		{"M2", "(a21+a22)b11", m2},
		{"M3", "a11(b12-b22)", m3},
		{"M4", "a22(b21-b11)", m4},
		{"M5", "(a11+a12)b22", m5},
		{"M6", "(a21-a11)(b11+b12)", m6},
		{"M7", "(a12-a22)(b21+b22)", m7},
	}
	for _, p := range steps {
		s.rec.Stats().Products++
		s.rec.Emit(domain.Step{
			Kind:        domain.StepProduct,
			Target:      domain.Coord{Quadrant: quadrant + "." + p.name},
			Value:       domain.IntPtr(p.value),
			Description: fmt.Sprintf("%s: %s = %s = %d", quadrant, p.name, p.formula, p.value),
		})
	}

	result := [][]int{
		{m1 + m4 - m5 + m7, m3 + m5},
		{m2 + m4, m1 - m2 + m3 + m6},
	}
	s.rec.Emit(domain.Step{
		Kind:           domain.StepCombine,
		Target:         domain.Coord{Quadrant: quadrant},
		MatrixSnapshot: domain.CloneTable(result),
		Description:    fmt.Sprintf("%s: combine C11=M1+M4-M5+M7, C12=M3+M5, C21=M2+M4, C22=M1-M2+M3+M6", quadrant),
	})
	return result
}

func add(a, b [][]int) [][]int {
	out := make([][]int, len(a))
	for i := range a {
		out[i] = make([]int, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

func sub(a, b [][]int) [][]int {
	out := make([][]int, len(a))
	for i := range a {
		out[i] = make([]int, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] - b[i][j]
		}
	}
	return out
}

func split(m [][]int, half int) (q11, q12, q21, q22 [][]int) {
	q11 = make([][]int, half)
	q12 = make([][]int, half)
	q21 = make([][]int, half)
	q22 = make([][]int, half)
	for i := 0; i < half; i++ {
		q11[i] = m[i][:half]
		q12[i] = m[i][half:]
		q21[i] = m[i+half][:half]
		q22[i] = m[i+half][half:]
	}
	return
}

func join(c11, c12, c21, c22 [][]int) [][]int {
	half := len(c11)
	n := half * 2
	out := make([][]int, n)
	for i := 0; i < half; i++ {
		out[i] = append(append([]int(nil), c11[i]...), c12[i]...)
		out[i+half] = append(append([]int(nil), c21[i]...), c22[i]...)
	}
	return out
}

// Multiply is the naive O(n^3) product, used as a correctness oracle.
func Multiply(a, b [][]int) [][]int {
	n := len(a)
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// Solver adapts Solve to the registry contract.
type Solver struct{}

// NewSolver returns the registry adapter for this algorithm.
func NewSolver() Solver { return Solver{} }

// Name implements ports.Solver.
func (Solver) Name() string { return Name }

// Solve implements ports.Solver.
func (Solver) Solve(ctx context.Context, inputs map[string]any) (*domain.Trace, error) {
	var in Input
	if err := domain.DecodeInputs(inputs, &in); err != nil {
		return nil, err
	}
	return Solve(ctx, in)
}
