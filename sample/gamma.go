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

// NewGamma returns a sampler for the Gamma distribution with the given
// shape and scale, choosing the algorithm by shape: Ahrens-Dieter GS
// below 1, a plain Exponential at exactly 1, and Ahrens-Dieter GD
// above. The choice runs once per distribution, never per draw.
func NewGamma(shape, scale float64) (Sampler, error) {
	if err := validatePositive(shape, scale); err != nil {
		return nil, err
	}

	switch {
	case shape < 1:
		return NewGammaGS(shape, scale)
	case shape == 1:
		return NewExponential(scale)
	default:
		return NewGammaGD(shape, scale)
	}
}
