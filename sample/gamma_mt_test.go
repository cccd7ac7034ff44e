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

package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/vargonis/distributions/sample"
)

func TestGammaMT(t *testing.T) {
	var tests = []struct {
		name   string
		shape  float64
		scale  float64
		n      int
		seed   uint64
		expect paramBounds
	}{
		{
			name:  "shape 1, scale 1",
			shape: 1,
			scale: 1,
			n:     200000,
			seed:  7,
			expect: paramBounds{
				meanLow:  0.98,
				meanHigh: 1.02,
				varLow:   0.94,
				varHigh:  1.06,
			},
		},
		{
			name:  "shape 5, scale 3",
			shape: 5,
			scale: 3,
			n:     200000,
			seed:  8,
			expect: paramBounds{
				meanLow:  14.85,
				meanHigh: 15.15,
				varLow:   43.5,
				varHigh:  46.5,
			},
		},
		{
			name:  "shape 30, scale 0.1",
			shape: 30,
			scale: 0.1,
			n:     200000,
			seed:  9,
			expect: paramBounds{
				meanLow:  2.98,
				meanHigh: 3.02,
				varLow:   0.29,
				varHigh:  0.31,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := sample.NewGammaMT(test.shape, test.scale)
			require.NoError(t, err)
			testGammaSampler(t, g, sample.NewSource(test.seed), test.n, test.expect)
		})
	}
}

// The GD and MT samplers target the same distribution; their sample
// means for Gamma(5, 3) must agree within statistical tolerance.
func TestGammaGDMTConsistency(t *testing.T) {
	gd, err := sample.NewGammaGD(5, 3)
	require.NoError(t, err)
	mt, err := sample.NewGammaMT(5, 3)
	require.NoError(t, err)

	const n = 200000
	meanGD := stat.Mean(draw(gd, sample.NewSource(10), n), nil)
	meanMT := stat.Mean(draw(mt, sample.NewSource(11), n), nil)

	assert.True(t, math.Abs(meanGD-meanMT) < 0.1, "GD and MT sample means diverge: %v vs %v", meanGD, meanMT)
	assert.InDelta(t, 15.0, meanGD, 0.15)
	assert.InDelta(t, 15.0, meanMT, 0.15)
}

// Normal draws putting 1+cx at or below zero are discarded before the
// cubic transform.
func TestGammaMT_NegativeTransformRedraw(t *testing.T) {
	g, err := sample.NewGammaMT(1, 1)
	require.NoError(t, err)

	// first normal value drives 1+cx negative, second is accepted by
	// the quartic squeeze
	src := &scriptedSource{normal: []float64{-3, 0.5}, uniform: []float64{0.5}}
	x := g.Sample(src)

	assert.True(t, x > 0)
	assert.Equal(t, 2, src.ni)
	assert.Equal(t, 1, src.ui)
}
