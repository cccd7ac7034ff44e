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

package internal

import (
	"errors"
)

// Sentinel errors shared by the sample and data packages. The packages
// wrap them with context about the offending values; callers match them
// with errors.Is.
var ErrInvalidParameter = errors.New("invalid distribution parameter")
var ErrNumericDomain = errors.New("random source value outside its documented range")
var ErrMalformedInput = errors.New("input data is not of the proper form")
