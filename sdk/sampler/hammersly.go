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
	"github.com/zintix-labs/seqlab/sdk/core"
	"github.com/zintix-labs/seqlab/space"
	"gonum.org/v1/gonum/mat"
)

// Hammersly 點集：前 nDim-1 維為 Halton 序列，最後一維為等距格點 (i+1)/n。
//
// 樣本數需事先確定（最後一維依 n 而定），因此它是點集而非可延伸的序列。
// nDim == 1 時等同 Halton。
type Hammersly struct {
	halton *Halton
}

// NewHammersly 依設定建立 Hammersly 產生器；設定語意與 Halton 相同。
func NewHammersly(cfg HaltonConfig) (*Hammersly, error) {
	h, err := NewHalton(cfg)
	if err != nil {
		return nil, err
	}
	return &Hammersly{halton: h}, nil
}

// DefaultHammersly 固定 skip = 0、自動產生質數。
func DefaultHammersly() *Hammersly {
	h, _ := NewHammersly(HaltonConfig{Skip: FixedSkip(0)})
	return h
}

// Generate 在 dims 組成的空間中產生 n 個原生尺度的 Hammersly 點。
func (hm *Hammersly) Generate(dims []space.Dimension, n int, rs core.RandomState) ([]space.Point, error) {
	sp, err := space.New(dims...)
	if err != nil {
		return nil, err
	}
	return hm.GenerateSpace(sp, n, rs)
}

// GenerateSpace 與 Generate 相同，但直接使用已建立的 Space。
func (hm *Hammersly) GenerateSpace(sp *space.Space, n int, rs core.RandomState) ([]space.Point, error) {
	return generateOn(sp, n, rs, hm.Sample)
}

// Sample 回傳 n x nDim 的單位尺度樣本；Batch.Primes 只含前 nDim-1 維的基底。
func (hm *Hammersly) Sample(nDim, n int, rs core.RandomState) (*Batch, error) {
	if err := checkSize(nDim, n); err != nil {
		return nil, err
	}
	if nDim == 1 {
		return hm.halton.Sample(1, n, rs)
	}
	b, err := hm.halton.Sample(nDim-1, n, rs)
	if err != nil {
		return nil, err
	}
	unit := mat.NewDense(n, nDim, nil)
	unit.Slice(0, n, 0, nDim-1).(*mat.Dense).Copy(b.Unit)
	for i := 0; i < n; i++ {
		unit.Set(i, nDim-1, float64(i+1)/float64(n))
	}
	b.Unit = unit
	return b, nil
}
