package gf3

import (
	"fmt"
	"strings"
)

// Matrix is a dense row major matrix over GF(3).
type Matrix struct {
	rows, cols int
	data       []Vector
}

// NewMatrix creates a rows x cols matrix. Values, if given, are in row major
// order and are reduced mod 3.
func NewMatrix(rows, cols int, values ...int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("matrix dimensions must be non-negative")
	}
	if len(values) > 0 && len(values) != rows*cols {
		panic(fmt.Sprintf("expected %v values but found %v", rows*cols, len(values)))
	}
	m := &Matrix{rows: rows, cols: cols, data: make([]Vector, rows)}
	for r := range m.data {
		m.data[r] = make(Vector, cols)
		if len(values) > 0 {
			for c := 0; c < cols; c++ {
				m.data[r][c] = Reduce(values[r*cols+c])
			}
		}
	}
	return m
}

// NewMatrixFromRows copies the rows into a new matrix.
func NewMatrixFromRows(rows []Vector) *Matrix {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		m.SetRow(r, row)
	}
	return m
}

func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m
}

func (m *Matrix) Copy() *Matrix {
	result := &Matrix{rows: m.rows, cols: m.cols, data: make([]Vector, m.rows)}
	for r, row := range m.data {
		result.data[r] = row.Copy()
	}
	return result
}

func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) At(r, c int) Symbol {
	return m.data[r][c]
}

func (m *Matrix) Set(r, c int, s Symbol) {
	m.data[r][c] = s % Modulus
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) Vector {
	return m.data[r].Copy()
}

// Column returns a copy of column c.
func (m *Matrix) Column(c int) Vector {
	result := make(Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		result[r] = m.data[r][c]
	}
	return result
}

func (m *Matrix) SetRow(r int, row Vector) {
	if len(row) != m.cols {
		panic(fmt.Sprintf("row length == %v is required but found %v", m.cols, len(row)))
	}
	for c, s := range row {
		m.data[r][c] = s % Modulus
	}
}

func (m *Matrix) SetColumn(c int, col Vector) {
	if len(col) != m.rows {
		panic(fmt.Sprintf("column length == %v is required but found %v", m.rows, len(col)))
	}
	for r, s := range col {
		m.data[r][c] = s % Modulus
	}
}

// SetMatrix copies a into m with a's top left corner at (row, col).
func (m *Matrix) SetMatrix(a *Matrix, row, col int) {
	rows, cols := a.Dims()
	if row+rows > m.rows || col+cols > m.cols {
		panic("matrix does not fit at the given offset")
	}
	for r := 0; r < rows; r++ {
		copy(m.data[row+r][col:col+cols], a.data[r])
	}
}

// Slice returns a copy of the rows x cols block starting at (row, col).
func (m *Matrix) Slice(row, col, rows, cols int) *Matrix {
	if row+rows > m.rows || col+cols > m.cols {
		panic("slice is out of range")
	}
	result := NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		copy(result.data[r], m.data[row+r][col:col+cols])
	}
	return result
}

// Columns returns a copy of the given columns, in order.
func (m *Matrix) Columns(indices []int) *Matrix {
	result := NewMatrix(m.rows, len(indices))
	for c, i := range indices {
		for r := 0; r < m.rows; r++ {
			result.data[r][c] = m.data[r][i]
		}
	}
	return result
}

func (m *Matrix) SwapRows(i, j int) {
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

func (m *Matrix) SwapColumns(i, j int) {
	for _, row := range m.data {
		row[i], row[j] = row[j], row[i]
	}
}

// T returns the transpose.
func (m *Matrix) T() *Matrix {
	result := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			result.data[c][r] = m.data[r][c]
		}
	}
	return result
}

// Neg returns -m mod 3.
func (m *Matrix) Neg() *Matrix {
	result := NewMatrix(m.rows, m.cols)
	for r, row := range m.data {
		for c, s := range row {
			result.data[r][c] = s.Neg()
		}
	}
	return result
}

// Mul returns m*b mod 3.
func (m *Matrix) Mul(b *Matrix) *Matrix {
	brows, bcols := b.Dims()
	if m.cols != brows {
		panic(fmt.Sprintf("dimension mismatch: (%v,%v)*(%v,%v)", m.rows, m.cols, brows, bcols))
	}
	result := NewMatrix(m.rows, bcols)
	for r, row := range m.data {
		result.data[r] = row.MulMat(b)
	}
	return result
}

// MulVec returns m*v^T mod 3 as a vector.
func (m *Matrix) MulVec(v Vector) Vector {
	if len(v) != m.cols {
		panic(fmt.Sprintf("vector length == %v is required but found %v", m.cols, len(v)))
	}
	result := make(Vector, m.rows)
	for r, row := range m.data {
		result[r] = row.Dot(v)
	}
	return result
}

func (m *Matrix) IsZero() bool {
	for _, row := range m.data {
		if !row.IsZero() {
			return false
		}
	}
	return true
}

func (m *Matrix) Equals(b *Matrix) bool {
	if b == nil {
		return false
	}
	rows, cols := b.Dims()
	if m.rows != rows || m.cols != cols {
		return false
	}
	for r, row := range m.data {
		if !row.Equals(b.data[r]) {
			return false
		}
	}
	return true
}

func (m *Matrix) String() string {
	buf := strings.Builder{}
	for _, row := range m.data {
		buf.WriteString("[")
		buf.WriteString(row.String())
		buf.WriteString("]\n")
	}
	return buf.String()
}

// scaleRow multiplies row r by s.
func (m *Matrix) scaleRow(r int, s Symbol) {
	for c, x := range m.data[r] {
		m.data[r][c] = x.Mul(s)
	}
}

// subRowMultiple sets row i to row i - f*row j.
func (m *Matrix) subRowMultiple(i, j int, f Symbol) {
	src := m.data[j]
	for c, x := range m.data[i] {
		m.data[i][c] = x.Sub(src[c].Mul(f))
	}
}
