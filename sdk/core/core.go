// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package core 提供 seqlab 使用的亂數核心與 random state 解析。
//
// 低差異序列本身是決定性的；亂數只在「skip 隨機化」與「隨機基準比較」時被消耗。
package core

import "sync"

// PRNG 定義核心亂數取樣能力。
//
// Core 同時滿足 math/rand/v2 的 Source（只需 Uint64），
// 因此可以直接作為 gonum distuv 分布的 Src 使用。
type PRNG interface {
	// Uint64 回傳 uint64 亂數。
	Uint64() uint64
	// Float64 回傳 [0,1) 的浮點亂數。
	Float64() float64
	// UintN 回傳 [0,max) 的 uint 亂數，若 max == 0 回傳 0。
	UintN(uint) uint
	// IntN 回傳 [0,max) 的 int 亂數，若 max <= 0 回傳 -1。
	IntN(int) int
}

type PRNGFactory interface {
	// New 以指定 seed 建立新的 PRNG。
	//
	// 合約：同一實作、同一版本下 New(seed) 必須是決定性的，
	// 相同 seed 產生相同輸出序列（可重現的初始點）。
	New(int64) PRNG
}

// DefaultPRNG 實作預設的 PRNGFactory（PCG64）
type DefaultPRNG struct{}

// New 滿足合約
func (d *DefaultPRNG) New(seed int64) PRNG {
	return NewPCG64WithSeed(seed)
}

func Default() *DefaultPRNG {
	return &DefaultPRNG{}
}

// Core 封裝 PRNG，並提供常用取樣工具。
// Core 本身不是 goroutine-safe，除非底層 PRNG 自行加鎖（見 Locked）。
type Core struct {
	PRNG
}

// New 允許使用外部自實現的 PRNG 建立 Core。
func New(rng PRNG) *Core {
	return &Core{rng}
}

// NewWithSeed 以預設 PRNG 與指定 seed 建立 Core。
func NewWithSeed(seed int64) *Core {
	return New(Default().New(seed))
}

// IntRange 回傳 [lo,hi) 的均勻整數；hi <= lo 時回傳 lo。
func (c *Core) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(c.UintN(uint(hi-lo)))
}

// Uniform 回傳 [lo,hi) 的均勻浮點數。
func (c *Core) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*c.Float64()
}

// -----------------------------------------------------------------------------
// Locked
// -----------------------------------------------------------------------------

// lockedPRNG 以互斥鎖保護底層 PRNG，給 process 預設來源使用。
type lockedPRNG struct {
	mu  sync.Mutex
	rng PRNG
}

// Locked 將 PRNG 包裝為 goroutine-safe 版本。
func Locked(rng PRNG) PRNG {
	if l, ok := rng.(*lockedPRNG); ok {
		return l
	}
	return &lockedPRNG{rng: rng}
}

func (l *lockedPRNG) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Uint64()
}

func (l *lockedPRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedPRNG) UintN(max uint) uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.UintN(max)
}

func (l *lockedPRNG) IntN(max int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(max)
}
