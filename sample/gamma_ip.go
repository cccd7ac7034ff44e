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

// ShapePlusOneMethod selects the algorithm family of the sub-sampler a
// GammaIP constructs for shape + 1.
type ShapePlusOneMethod int

const (
	// MethodGD selects the Ahrens-Dieter GD sub-sampler.
	MethodGD ShapePlusOneMethod = iota
	// MethodMT selects the Marsaglia-Tsang sub-sampler.
	MethodMT
)

// GammaIP samples from the Gamma distribution with 0 < shape < 1 and
// the given scale by drawing from Gamma(shape+1, scale) and shifting
// the shape down by one with an independent power of a uniform variate.
// The shift costs a single extra exponential draw and adds no rejection
// loop of its own. The sub-sampler is chosen once at construction and
// owned exclusively by the GammaIP value.
type GammaIP struct {
	sub Sampler
	nia float64
}

// NewGammaIP returns an instance of the GammaIP sampler. The method
// argument picks the sub-sampler family; shape + 1 >= 1 always holds,
// so both families are valid choices.
func NewGammaIP(shape, scale float64, method ShapePlusOneMethod) (*GammaIP, error) {
	if err := validatePositive(shape, scale); err != nil {
		return nil, err
	}
	if shape >= 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "IP sampler requires shape < 1, got %v", shape)
	}

	var sub Sampler
	var err error
	switch method {
	case MethodGD:
		sub, err = NewGammaGD(shape+1, scale)
	case MethodMT:
		sub, err = NewGammaMT(shape+1, scale)
	default:
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "unknown sub-sampler method %d", method)
	}
	if err != nil {
		return nil, err
	}

	return &GammaIP{
		sub: sub,
		nia: -1 / shape,
	}, nil
}

// Sample draws a single Gamma distributed value. With e standard
// exponential, exp(-e/shape) is a uniform variate raised to 1/shape.
func (g *GammaIP) Sample(src Source) float64 {
	x := g.sub.Sample(src)
	e := src.ExpFloat64()

	return x * math.Exp(g.nia*e)
}
