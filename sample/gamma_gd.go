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

// q0Coef is the power series in 1/shape behind the q0 constant,
// listed from the constant term up.
var q0Coef = [...]float64{
	0.0416666664, 0.0208333723, 0.0079849875,
	0.0015746717, -0.0003349403, 0.0003340332,
	0.0006053049, -0.0004701849, 0.0001710320,
}

// qCoef is the series used by calcQ near v = 0, where the log1p form
// of q(t) would cancel badly.
var qCoef = [...]float64{
	0.333333333, -0.249999949, 0.199999867,
	-0.1666774828, 0.142873973, -0.124385581,
	0.110368310, -0.112750886, 0.10408986,
}

const fourSqrtTwo = 5.656854249492380195206754896838

// gdTMin bounds t in the double-exponential tail loop so that
// x = s + t/2 stays inside the domain of calcQ.
const gdTMin = -0.71874483771719

// GammaGD samples from the Gamma distribution with shape >= 1 and the
// given scale, using the acceptance/rejection method of Ahrens and
// Dieter (1982), algorithm GD. About half of all draws are accepted
// after a single normal variate; the rest pass through a cubic squeeze
// test or the q(t) correction before falling into the
// double-exponential tail loop.
type GammaGD struct {
	scale float64
	// derived from shape
	s2  float64
	s   float64
	i2s float64
	d   float64
	q0  float64
	// constants of the shape regime, fixed at construction
	b     float64
	sigma float64
	c     float64
}

// NewGammaGD returns an instance of the GammaGD sampler. All
// shape-dependent constants are precomputed here so that Sample never
// recomputes them.
func NewGammaGD(shape, scale float64) (*GammaGD, error) {
	if err := validatePositive(shape, scale); err != nil {
		return nil, err
	}
	if shape < 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "GD sampler requires shape >= 1, got %v", shape)
	}

	g := &GammaGD{scale: scale}
	g.s2 = shape - 0.5
	g.s = math.Sqrt(g.s2)
	g.i2s = 0.5 / g.s
	g.d = fourSqrtTwo - 12*g.s

	ia := 1 / shape
	g.q0 = ia * horner(ia, q0Coef[:])

	switch {
	case shape <= 3.686:
		g.b = 0.463 + g.s + 0.178*g.s2
		g.sigma = 1.235
		g.c = 0.195/g.s - 0.079 + 0.16*g.s
	case shape <= 13.022:
		g.b = 1.654 + 0.0076*g.s2
		g.sigma = 1.68/g.s + 0.275
		g.c = 0.062/g.s + 0.024
	default:
		g.b = 1.77
		g.sigma = 0.75
		g.c = 0.1515 / g.s
	}

	return g, nil
}

// calcQ evaluates the correction term q(t) of algorithm GD. The series
// branch takes over for |t/(2s)| <= 1/4, where log1p(v) - v + v*v/2
// would lose most of its digits to cancellation.
func (g *GammaGD) calcQ(t float64) float64 {
	v := t * g.i2s
	if math.Abs(v) > 0.25 {
		return g.q0 - g.s*t + 0.25*t*t + 2*g.s2*math.Log1p(v)
	}

	return g.q0 + 0.5*t*t*v*horner(v, qCoef[:])
}

// Sample draws a single Gamma distributed value.
func (g *GammaGD) Sample(src Source) float64 {
	// immediate acceptance for t >= 0
	t := src.NormFloat64()
	x := g.s + 0.5*t
	if t >= 0 {
		return x * x * g.scale
	}

	// cubic squeeze test
	u := src.Float64()
	if g.d*u <= t*t*t {
		return x * x * g.scale
	}

	// quotient test; x <= 0 rejects without it since squaring x would
	// otherwise fold the negative region onto the positive one
	if x > 0 && math.Log1p(-u) <= g.calcQ(t) {
		return x * x * g.scale
	}

	// double-exponential tail
	for {
		e := src.ExpFloat64()
		u = 2*src.Float64() - 1
		if u < 0 {
			t = g.b - g.sigma*e
		} else {
			t = g.b + g.sigma*e
		}
		if t < gdTMin {
			continue
		}

		q := g.calcQ(t)
		if q > 0 && g.c*math.Abs(u) <= math.Expm1(q)*math.Exp(e-0.5*t*t) {
			x = g.s + 0.5*t
			return x * x * g.scale
		}
	}
}
