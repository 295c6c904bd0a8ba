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

package core

import "sync"

type stateKind uint8

const (
	stateNone stateKind = iota // 使用 process 預設來源
	stateSeed                  // 以 seed 建立新的 Core
	stateCore                  // 使用呼叫端既有的 Core
)

// RandomState 描述呼叫端提供的亂數狀態：seed、既有 Core、或不提供。
//
// 零值等同 NoState()。
type RandomState struct {
	kind stateKind
	seed int64
	core *Core
}

// Seed 以整數 seed 指定可重現的亂數來源；每次 Resolve 都會得到全新、同序列的 Core。
func Seed(seed int64) RandomState {
	return RandomState{kind: stateSeed, seed: seed}
}

// FromCore 直接使用既有 Core；亂數消耗會推進該 Core 的狀態。nil 視同 NoState。
func FromCore(c *Core) RandomState {
	if c == nil {
		return RandomState{}
	}
	return RandomState{kind: stateCore, core: c}
}

// NoState 使用 process 預設來源（crypto seed，加鎖）。
func NoState() RandomState {
	return RandomState{}
}

// SeedPtr 將可選的 seed 轉為 RandomState：nil → NoState。
// 給設定檔、HTTP 請求這類「seed 可省略」的輸入使用。
func SeedPtr(seed *int64) RandomState {
	if seed == nil {
		return NoState()
	}
	return Seed(*seed)
}

// Resolve 取得實際的 Core。
func (rs RandomState) Resolve() *Core {
	switch rs.kind {
	case stateSeed:
		return NewWithSeed(rs.seed)
	case stateCore:
		return rs.core
	default:
		return processDefault()
	}
}

// IsSeeded 回報是否為決定性（seed 指定）的狀態。
func (rs RandomState) IsSeeded() bool {
	return rs.kind == stateSeed
}

var (
	defaultOnce sync.Once
	defaultCore *Core
)

func processDefault() *Core {
	defaultOnce.Do(func() {
		defaultCore = New(Locked(NewPCG64()))
	})
	return defaultCore
}
