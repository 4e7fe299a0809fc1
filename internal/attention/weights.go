package attention

import (
	"gonum.org/v1/gonum/mat"

	"aiforall/internal/domain"
)

// Matrix is a square projection matrix in row-major order.
type Matrix [domain.Dim][domain.Dim]float64

// Reference projection matrices. Treated as constants.
var (
	QueryWeights = Matrix{
		{0.5, 0.1, -0.2, 0.3},
		{0.2, 0.6, 0.1, -0.1},
		{-0.1, 0.3, 0.7, 0.2},
		{0.3, -0.1, 0.2, 0.5},
	}
	KeyWeights = Matrix{
		{0.4, 0.2, -0.1, 0.2},
		{0.1, 0.5, 0.2, 0.0},
		{0.0, 0.2, 0.6, 0.3},
		{0.2, 0.0, 0.1, 0.4},
	}
	ValueWeights = Matrix{
		{0.3, 0.0, 0.1, 0.4},
		{0.1, 0.4, 0.0, 0.2},
		{0.2, 0.1, 0.5, 0.1},
		{0.0, 0.3, 0.2, 0.6},
	}
)

// dense copies m into a freshly allocated gonum matrix.
func (m Matrix) dense() *mat.Dense {
	data := make([]float64, 0, domain.Dim*domain.Dim)
	for _, row := range m {
		data = append(data, row[:]...)
	}
	return mat.NewDense(domain.Dim, domain.Dim, data)
}

func fromDense(d mat.Matrix) Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// shift returns a copy of w with delta added to every entry.
func shift(w *mat.Dense, delta float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v + delta }, w)
	return &out
}

// project computes w·v.
func project(w *mat.Dense, v domain.Vector) domain.Vector {
	x := mat.NewVecDense(domain.Dim, v[:])
	var y mat.VecDense
	y.MulVec(w, x)
	var out domain.Vector
	for i := range out {
		out[i] = y.AtVec(i)
	}
	return out
}

func dot(a, b domain.Vector) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
