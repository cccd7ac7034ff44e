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

package data_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vargonis/distributions/data"
	"github.com/vargonis/distributions/internal"
	"github.com/vargonis/distributions/sample"
)

func TestVector_Random(t *testing.T) {
	sampler, err := sample.NewGamma(2, 1)
	require.NoError(t, err)

	v := data.NewRandomVector(10000, sampler, sample.NewSource(21))
	require.Len(t, v, 10000)
	for _, x := range v {
		assert.True(t, x > 0)
	}
	assert.InDelta(t, 2.0, v.Mean(), 0.1)
	assert.InDelta(t, 2.0, v.Variance(), 0.3)
}

func TestVector_RandomDet(t *testing.T) {
	sampler, err := sample.NewGammaMT(3, 2)
	require.NoError(t, err)

	key := &[32]byte{0: 5, 31: 9}
	first := data.NewRandomDetVector(100, sampler, key)
	second := data.NewRandomDetVector(100, sampler, key)
	assert.Equal(t, first, second)
}

func TestVector_Ops(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{4, 5, 6})

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, data.NewVector([]float64{5, 7, 9}), sum)

	diff, err := w.Sub(v)
	require.NoError(t, err)
	assert.Equal(t, data.NewVector([]float64{3, 3, 3}), diff)

	prod, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, prod)

	scaled := v.MulScalar(2)
	assert.Equal(t, data.NewVector([]float64{2, 4, 6}), scaled)
	// v itself is untouched
	assert.Equal(t, data.NewVector([]float64{1, 2, 3}), v)

	assert.Equal(t, 2.0, v.Mean())

	cp := v.Copy()
	cp[0] = 100
	assert.Equal(t, 1.0, v[0])
}

func TestVector_DimensionMismatch(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{1, 2})

	_, err := v.Add(w)
	require.Error(t, err)
	assert.True(t, errors.Is(err, internal.ErrMalformedInput))

	_, err = v.Sub(w)
	require.Error(t, err)

	_, err = v.Dot(w)
	require.Error(t, err)
}

func TestVector_Constant(t *testing.T) {
	v := data.NewConstantVector(4, 1.5)
	assert.Equal(t, data.NewVector([]float64{1.5, 1.5, 1.5, 1.5}), v)
}
