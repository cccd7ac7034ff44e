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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vargonis/distributions/internal"
	"github.com/vargonis/distributions/sample"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with random elements
// drawn by the provided sample.Sampler from src.
func NewRandomVector(len int, sampler sample.Sampler, src sample.Source) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample(src)
	}

	return NewVector(vec)
}

// NewRandomDetVector returns a new Vector instance with random elements
// drawn by the provided sample.Sampler from a deterministic source
// derived from key. The same sampler and key always produce the same
// vector.
func NewRandomDetVector(len int, sampler sample.Sampler, key *[32]byte) Vector {
	return NewRandomVector(len, sampler, sample.NewDetSource(key))
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a scalar x and returns
// the result in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	newVec := v.Copy()
	floats.Scale(x, newVec)

	return newVec
}

// Add adds vectors v and other and returns the result in a new Vector.
// It returns an error if the vectors are not of the same length.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(internal.ErrMalformedInput, "vectors should be of the same length")
	}
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)

	return sum, nil
}

// Sub subtracts vector other from v and returns the result in a new
// Vector. It returns an error if the vectors are not of the same length.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(internal.ErrMalformedInput, "vectors should be of the same length")
	}
	diff := make(Vector, len(v))
	floats.SubTo(diff, v, other)

	return diff, nil
}

// Dot calculates the inner product of vectors v and other.
// It returns an error if the vectors are not of the same length.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrap(internal.ErrMalformedInput, "vectors should be of the same length")
	}

	return floats.Dot(v, other), nil
}

// Mean returns the arithmetic mean of the vector's elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the vector's
// elements.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}
