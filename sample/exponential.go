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
	"github.com/pkg/errors"

	"github.com/vargonis/distributions/internal"
)

// Exponential samples from the Exponential distribution with the given
// scale (mean). It coincides with Gamma(1, scale), which is where the
// NewGamma factory routes shape == 1.
type Exponential struct {
	scale float64
}

// NewExponential returns an instance of the Exponential sampler.
func NewExponential(scale float64) (*Exponential, error) {
	if !(scale > 0) {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "scale must be positive, got %v", scale)
	}

	return &Exponential{scale: scale}, nil
}

// Sample draws a single Exponential distributed value.
func (e *Exponential) Sample(src Source) float64 {
	return e.scale * src.ExpFloat64()
}
