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

package sampler

import (
	"fmt"
	"slices"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/core"
)

// SkipKind skip 決策種類
type SkipKind uint8

const (
	// SkipMaxPrime 未設定：skip 取質數基底中的最大值。
	SkipMaxPrime SkipKind = iota
	// SkipFixed 固定 skip，不消耗亂數。
	SkipFixed
	// SkipRandom 由亂數在 [Min, Max) 均勻抽取。
	SkipRandom
)

var skipKindNames = map[SkipKind]string{
	SkipMaxPrime: "max-prime",
	SkipFixed:    "fixed",
	SkipRandom:   "random",
}

func (k SkipKind) String() string {
	return skipKindNames[k]
}

// SkipPolicy 決定所有樣本索引的共同位移量。
//
// 位移用來跳過序列前段品質較差的點，並讓各維度錯開。
// 零值為 SkipMaxPrime。
type SkipPolicy struct {
	Kind SkipKind
	Min  int // SkipFixed 時為固定值；SkipRandom 時為下界（含）
	Max  int // SkipRandom 時為上界（不含）
}

// AutoSkip skip = max(primes)
func AutoSkip() SkipPolicy {
	return SkipPolicy{Kind: SkipMaxPrime}
}

// FixedSkip skip = k
func FixedSkip(k int) SkipPolicy {
	return SkipPolicy{Kind: SkipFixed, Min: k, Max: k}
}

// RandomSkip skip ~ U[lo, hi)
func RandomSkip(lo, hi int) SkipPolicy {
	return SkipPolicy{Kind: SkipRandom, Min: lo, Max: hi}
}

// SkipFromBounds 將 (min_skip, max_skip) 設定值對應到 SkipPolicy，負值代表未設定：
//
//   - 兩者皆為負            → SkipMaxPrime
//   - 兩者相等              → SkipFixed(min)
//   - 恰有一個為負          → SkipFixed(max(min, max))
//   - 兩者皆非負且不相等    → SkipRandom(min, max)
func SkipFromBounds(minSkip, maxSkip int) SkipPolicy {
	switch {
	case minSkip < 0 && maxSkip < 0:
		return AutoSkip()
	case minSkip == maxSkip:
		return FixedSkip(minSkip)
	case minSkip < 0 || maxSkip < 0:
		return FixedSkip(max(minSkip, maxSkip))
	default:
		return RandomSkip(minSkip, maxSkip)
	}
}

// Valid 檢查 policy 本身的合法性（不需要質數與亂數）。
func (p SkipPolicy) Valid() error {
	switch p.Kind {
	case SkipMaxPrime:
		return nil
	case SkipFixed:
		if p.Min < 0 {
			return errs.Warnf("skip: fixed skip must be >= 0, got %d", p.Min)
		}
		return nil
	case SkipRandom:
		if p.Min < 0 || p.Max <= p.Min {
			return errs.Warnf("skip: random skip needs 0 <= min < max, got [%d, %d)", p.Min, p.Max)
		}
		return nil
	default:
		return errs.Warnf("skip: unknown kind %d", p.Kind)
	}
}

// Resolve 依 policy 計算實際 skip。只有 SkipRandom 會從 c 消耗亂數。
func (p SkipPolicy) Resolve(primes []int, c *core.Core) (int, error) {
	if err := p.Valid(); err != nil {
		return 0, err
	}
	switch p.Kind {
	case SkipFixed:
		return p.Min, nil
	case SkipRandom:
		if c == nil {
			return 0, errs.NewFatal("skip: random skip requires a random source")
		}
		return c.IntRange(p.Min, p.Max), nil
	default:
		if len(primes) == 0 {
			return 0, errs.NewFatal("skip: max-prime policy requires at least one prime")
		}
		return slices.Max(primes), nil
	}
}

func (p SkipPolicy) String() string {
	switch p.Kind {
	case SkipFixed:
		return fmt.Sprintf("fixed(%d)", p.Min)
	case SkipRandom:
		return fmt.Sprintf("random[%d,%d)", p.Min, p.Max)
	default:
		return p.Kind.String()
	}
}
