/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/pkg/errors"

	"github.com/vargonis/distributions/internal"
	"github.com/vargonis/distributions/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(internal.ErrMalformedInput, "all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance with random elements
// drawn by the provided sample.Sampler from src.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler, src sample.Source) (Matrix, error) {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewRandomVector(cols, sampler, src)
	}

	return NewMatrix(mat)
}

// NewRandomDetMatrix returns a new Matrix instance with random elements
// drawn by the provided sample.Sampler from a deterministic source
// derived from key. The same sampler and key always produce the same
// matrix.
func NewRandomDetMatrix(rows, cols int, sampler sample.Sampler, key *[32]byte) (Matrix, error) {
	src := sample.NewDetSource(key)

	return NewRandomMatrix(rows, cols, sampler, src)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims returns a bool indicating whether matrix m
// has the given dimensions.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// Copy creates a new matrix with copies of all rows.
func (m Matrix) Copy() Matrix {
	mat := make([]Vector, m.Rows())
	for i, v := range m {
		mat[i] = v.Copy()
	}

	return mat
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, errors.Wrap(internal.ErrMalformedInput, "column index exceeds matrix dimensions")
	}

	column := make([]float64, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	return Matrix(transposed)
}

// Add adds matrices m and other and returns the result in a new Matrix.
// It returns an error if the matrices' dimensions do not match.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, errors.Wrap(internal.ErrMalformedInput, "matrices should have the same dimensions")
	}

	mat := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row, err := m[i].Add(other[i])
		if err != nil {
			return nil, err
		}
		mat[i] = row
	}

	return NewMatrix(mat)
}

// MulScalar multiplies all elements of matrix m by a scalar x
// and returns the result in a new Matrix.
func (m Matrix) MulScalar(x float64) Matrix {
	mat := make([]Vector, m.Rows())
	for i, v := range m {
		mat[i] = v.MulScalar(x)
	}

	return mat
}

// MulVec multiplies matrix m and vector v and returns
// the resulting vector. It returns an error if the number of
// m's columns is different from v's length.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, errors.Wrap(internal.ErrMalformedInput, "dimensions of the matrix and the vector do not match")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		prod, err := row.Dot(v)
		if err != nil {
			return nil, err
		}
		res[i] = prod
	}

	return res, nil
}
