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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// NewSource returns the default random Source, backed by
// golang.org/x/exp/rand seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewDetSource returns a deterministic Source whose uniform stream is the
// salsa20 keystream under key; normal and exponential values are derived
// from that stream by the golang.org/x/exp/rand generator. Two sources
// built from the same key replay identical variate sequences, which makes
// any sampler driven by them bit-for-bit reproducible.
func NewDetSource(key *[32]byte) Source {
	s := &detStream{key: *key}
	s.off = len(s.buf)

	return rand.New(s)
}

// detStream is a rand.Source yielding the salsa20 keystream under a fixed
// key, 64 bits at a time. Each keystream block is generated under a fresh
// nonce holding the block counter.
type detStream struct {
	key [32]byte
	ctr uint64
	buf [64]byte
	off int
}

func (s *detStream) Uint64() uint64 {
	if s.off >= len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off : s.off+8])
	s.off += 8

	return v
}

// Seed positions the keystream at the given block; the key alone fixes
// the stream contents.
func (s *detStream) Seed(seed uint64) {
	s.ctr = seed
	s.off = len(s.buf)
}

func (s *detStream) refill() {
	var nonce [8]byte
	var zero [64]byte
	binary.LittleEndian.PutUint64(nonce[:], s.ctr)
	s.ctr++

	salsa20.XORKeyStream(s.buf[:], zero[:], nonce[:], &s.key)
	s.off = 0
}
