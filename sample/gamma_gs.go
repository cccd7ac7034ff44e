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

const invE = 0.36787944117144233

// GammaGS samples from the Gamma distribution with 0 < shape <= 1 and
// the given scale, using the rejection method of Ahrens and Dieter
// (1974), algorithm GS. A boundary probability b splits each attempt
// between the power branch (density near zero) and the exponential
// tail branch.
type GammaGS struct {
	scale float64
	a     float64
	ia    float64
	b     float64
}

// NewGammaGS returns an instance of the GammaGS sampler.
func NewGammaGS(shape, scale float64) (*GammaGS, error) {
	if err := validatePositive(shape, scale); err != nil {
		return nil, err
	}
	if shape > 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "GS sampler requires shape <= 1, got %v", shape)
	}

	return &GammaGS{
		scale: scale,
		a:     shape,
		ia:    1 / shape,
		b:     1 + invE*shape,
	}, nil
}

// Sample draws a single Gamma distributed value.
//
// A uniform draw of exactly 0 puts the first branch at p = 0, where
// log(p) is -Inf, x becomes 0 and the e >= x test accepts immediately,
// so the call returns 0. This edge is inherited from the [0, 1) range
// of the Source and is deliberately not clamped; clamping would alter
// the distribution near the support boundary.
func (g *GammaGS) Sample(src Source) float64 {
	for {
		p := g.b * src.Float64()
		e := src.ExpFloat64()
		if p <= 1 {
			x := math.Exp(math.Log(p) * g.ia)
			if e >= x {
				return g.scale * x
			}
		} else {
			x := -math.Log(g.ia * (g.b - p))
			if e >= (1-g.a)*math.Log(x) {
				return g.scale * x
			}
		}
	}
}
