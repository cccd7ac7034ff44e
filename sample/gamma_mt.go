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

package sample

import (
	"math"

	"github.com/pkg/errors"

	"github.com/vargonis/distributions/internal"
)

// GammaMT samples from the Gamma distribution with shape >= 1 and the
// given scale, using the normal-based rejection method of Marsaglia and
// Tsang (2000): a normal variate is pushed through the cubic transform
// (1+cx)^3 and accepted by a quartic squeeze or the exact log test.
type GammaMT struct {
	d     float64
	c     float64
	kappa float64
}

// NewGammaMT returns an instance of the GammaMT sampler.
func NewGammaMT(shape, scale float64) (*GammaMT, error) {
	if err := validatePositive(shape, scale); err != nil {
		return nil, err
	}
	if shape < 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "MT sampler requires shape >= 1, got %v", shape)
	}

	d := shape - 1.0/3.0

	return &GammaMT{
		d:     d,
		c:     1 / math.Sqrt(9*d),
		kappa: d * scale,
	}, nil
}

// Sample draws a single Gamma distributed value.
func (g *GammaMT) Sample(src Source) float64 {
	for {
		// v must stay positive for the cubic transform
		x := src.NormFloat64()
		v := 1 + g.c*x
		for v <= 0 {
			x = src.NormFloat64()
			v = 1 + g.c*x
		}
		v = v * v * v

		u := src.Float64()
		x2 := x * x
		if u < 1-0.331*x2*x2 {
			return v * g.kappa
		}
		if math.Log(u) < 0.5*x2+g.d*(1-v+math.Log(v)) {
			return v * g.kappa
		}
	}
}
