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

// Package sample includes samplers for sampling random values
// from the Gamma probability distribution.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface,
// one per sampling algorithm and shape regime. Each sampler
// precomputes its shape-dependent constants once at construction
// and is immutable afterwards, so a single value can serve many
// draws and many goroutines; the only mutable state is the
// random Source passed to each Sample call.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill vector or matrix structures with
// the desired random data (see the data package).
package sample
