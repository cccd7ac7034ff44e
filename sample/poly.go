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

// horner evaluates the polynomial with the given coefficients, listed
// from the constant term up, at x via Horner's method.
func horner(x float64, coef []float64) float64 {
	p := coef[len(coef)-1]
	for i := len(coef) - 2; i >= 0; i-- {
		p = p*x + coef[i]
	}

	return p
}
