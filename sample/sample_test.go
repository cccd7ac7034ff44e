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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/vargonis/distributions/sample"
)

// paramBounds gives the acceptable interval for the sample mean and
// variance of a batch of draws.
type paramBounds struct {
	meanLow  float64
	meanHigh float64
	varLow   float64
	varHigh  float64
}

func draw(s sample.Sampler, src sample.Source, n int) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = s.Sample(src)
	}

	return vec
}

func testGammaSampler(t *testing.T, s sample.Sampler, src sample.Source, n int, expect paramBounds) {
	vec := draw(s, src, n)
	for _, x := range vec {
		if x <= 0 {
			t.Fatalf("sampled value %v outside the support (0, inf)", x)
		}
	}

	me := stat.Mean(vec, nil)
	v := stat.Variance(vec, nil)
	assert.True(t, me > expect.meanLow, "mean value of the gamma distribution is too small")
	assert.True(t, me < expect.meanHigh, "mean value of the gamma distribution is too big")
	assert.True(t, v > expect.varLow, "variance of the gamma distribution is too small")
	assert.True(t, v < expect.varHigh, "variance of the gamma distribution is too big")
}

// scriptedSource replays pre-recorded uniform, normal and exponential
// streams and records how much of each was consumed.
type scriptedSource struct {
	uniform     []float64
	normal      []float64
	exponential []float64
	ui, ni, ei  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.uniform[s.ui]
	s.ui++
	return v
}

func (s *scriptedSource) NormFloat64() float64 {
	v := s.normal[s.ni]
	s.ni++
	return v
}

func (s *scriptedSource) ExpFloat64() float64 {
	v := s.exponential[s.ei]
	s.ei++
	return v
}
