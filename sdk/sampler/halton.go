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
	"log/slog"
	"math"
	"slices"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/core"
	"github.com/zintix-labs/seqlab/space"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultMaxDoublings = 32
	primeOrderPerDim    = 10      // 初始篩法門檻 = 10 * nDim
	maxPrimeThreshold   = 1 << 30 // 篩法門檻上限
)

// HaltonConfig Halton 產生器設定
type HaltonConfig struct {
	// Skip 索引位移策略，零值為 SkipMaxPrime。
	Skip SkipPolicy
	// Primes 固定的進位基底（依維度順序使用）。不足維度數時改用自動產生的質數。
	Primes []int
	// MaxDoublings 質數不足時，篩法門檻最多倍增幾次；0 使用 32，負值代表不倍增。
	MaxDoublings int
	// Log 可選；記錄每次取樣解析出的基底與 skip（debug level）。
	Log *slog.Logger
}

// Halton 多維低差異序列產生器。
//
// 第 d 維使用第 d 個質數作為 Van der Corput 的進位基底，
// 所有維度共用同一組索引 [skip, skip+n)。nDim == 1 時即為 Van der Corput 序列。
//
// Halton 建立後不可變，可在多個 goroutine 間共用；
// 但隨機 skip 使用的 Core 需由呼叫端各自提供（或使用 process 預設來源）。
type Halton struct {
	skip         SkipPolicy
	primes       []int
	maxDoublings int
	log          *slog.Logger
}

// NewHalton 依設定建立 Halton 產生器。
func NewHalton(cfg HaltonConfig) (*Halton, error) {
	if err := cfg.Skip.Valid(); err != nil {
		return nil, err
	}
	for i, p := range cfg.Primes {
		if p <= 1 {
			return nil, errs.Warnf("halton: base %d at position %d must be > 1", p, i)
		}
		if slices.Contains(cfg.Primes[:i], p) {
			return nil, errs.Warnf("halton: duplicate base %d at position %d", p, i)
		}
	}
	h := &Halton{
		skip:         cfg.Skip,
		primes:       slices.Clone(cfg.Primes),
		maxDoublings: cfg.MaxDoublings,
		log:          cfg.Log,
	}
	switch {
	case h.maxDoublings == 0:
		h.maxDoublings = defaultMaxDoublings
	case h.maxDoublings < 0:
		h.maxDoublings = 0
	}
	if h.log == nil {
		h.log = slog.New(slog.DiscardHandler)
	}
	return h, nil
}

// DefaultHalton skip 取最大質數、自動產生質數。
func DefaultHalton() *Halton {
	h, _ := NewHalton(HaltonConfig{})
	return h
}

// SkipPolicy 回傳設定的 skip 策略
func (h *Halton) SkipPolicy() SkipPolicy { return h.skip }

// Generate 在 dims 組成的空間中產生 n 個原生尺度的點，形狀為 n x len(dims)。
func (h *Halton) Generate(dims []space.Dimension, n int, rs core.RandomState) ([]space.Point, error) {
	sp, err := space.New(dims...)
	if err != nil {
		return nil, err
	}
	return h.GenerateSpace(sp, n, rs)
}

// GenerateSpace 與 Generate 相同，但直接使用已建立的 Space。
func (h *Halton) GenerateSpace(sp *space.Space, n int, rs core.RandomState) ([]space.Point, error) {
	return generateOn(sp, n, rs, h.Sample)
}

// GenerateUnit 只回傳 n x nDim 的單位尺度樣本。
func (h *Halton) GenerateUnit(nDim, n int, rs core.RandomState) (*mat.Dense, error) {
	b, err := h.Sample(nDim, n, rs)
	if err != nil {
		return nil, err
	}
	return b.Unit, nil
}

// Sample 取樣流程：
//  1. 解析質數基底（恰好 nDim 個）。
//  2. 依 skip 策略決定位移（只有隨機策略會消耗 rs 的亂數）。
//  3. 索引 [skip, skip+n) 對每個維度做 Van der Corput，寫入維度 x 樣本矩陣的一列。
//  4. 轉置為樣本 x 維度。
func (h *Halton) Sample(nDim, n int, rs core.RandomState) (*Batch, error) {
	if err := checkSize(nDim, n); err != nil {
		return nil, err
	}
	primes, err := h.ResolvePrimes(nDim)
	if err != nil {
		return nil, err
	}

	var c *core.Core
	if h.skip.Kind == SkipRandom {
		c = rs.Resolve()
	}
	skip, err := h.skip.Resolve(primes, c)
	if err != nil {
		return nil, err
	}
	if skip > math.MaxInt-(n-1) {
		return nil, errs.Warnf("halton: skip %d with %d samples overflows the index range", skip, n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + skip
	}

	rows := mat.NewDense(nDim, n, nil)
	for d := 0; d < nDim; d++ {
		VanDerCorputInto(rows.RawRowView(d), indices, primes[d])
	}

	h.log.Debug("halton sample",
		slog.Int("n_dim", nDim),
		slog.Int("n_samples", n),
		slog.Any("primes", primes),
		slog.Int("skip", skip),
		slog.String("policy", h.skip.String()),
	)
	return &Batch{Primes: primes, Skip: skip, Unit: mat.DenseCopyOf(rows.T())}, nil
}

// ResolvePrimes 回傳恰好 nDim 個進位基底。
//
// 設定的 Primes 足夠時直接取前 nDim 個；否則以 10*nDim 為門檻產生質數，
// 不足就把門檻倍增重算，最多 MaxDoublings 次。
func (h *Halton) ResolvePrimes(nDim int) ([]int, error) {
	if nDim < 1 {
		return nil, errs.Warnf("dimensionality must be >= 1, got %d", nDim)
	}
	primes := slices.Clone(h.primes)
	if len(primes) < nDim {
		order := primeOrderPerDim * nDim
		for doublings := 0; len(primes) < nDim; doublings++ {
			if doublings > h.maxDoublings || order > maxPrimeThreshold {
				return nil, errs.WrapWithExtra(ErrPrimeSupply,
					"halton: prime growth limit reached",
					fmt.Sprintf("n_dim=%d threshold=%d doublings=%d", nDim, order, doublings),
				)
			}
			primes = CreatePrimes(order)
			order *= 2
		}
	}
	primes = primes[:nDim]
	if len(primes) != nDim {
		return nil, errs.Wrapf(ErrDimMismatch, "halton: %d bases for %d dimensions", len(primes), nDim)
	}
	return primes, nil
}
