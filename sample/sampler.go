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

// Source supplies the raw random variates the samplers consume:
// uniform values in [0, 1), standard normal values (mean 0, variance 1)
// and standard exponential values (rate 1). *rand.Rand from both
// math/rand and golang.org/x/exp/rand satisfies it.
type Source interface {
	Float64() float64
	NormFloat64() float64
	ExpFloat64() float64
}

// Sampler is the interface implemented by all samplers in this package.
// Sample draws a single variate using src. A sampler holds only constants
// precomputed at construction, so one value may be shared across
// goroutines as long as every call is given its own Source.
type Sampler interface {
	Sample(src Source) float64
}

// validatePositive rejects non-positive (and NaN) shape or scale.
// All validation happens at construction; Sample itself cannot fail.
func validatePositive(shape, scale float64) error {
	if !(shape > 0) {
		return errors.Wrapf(internal.ErrInvalidParameter, "shape must be positive, got %v", shape)
	}
	if !(scale > 0) {
		return errors.Wrapf(internal.ErrInvalidParameter, "scale must be positive, got %v", scale)
	}

	return nil
}
