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
	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/core"
	"github.com/zintix-labs/seqlab/space"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrPrimeSupply 質數篩的門檻成長超過上限仍湊不到足夠的質數。
	ErrPrimeSupply = errs.NewFatal("insufficient prime supply")
	// ErrDimMismatch 質數基底數量與維度數不一致（不變量被破壞）。
	ErrDimMismatch = errs.NewFatal("prime base count does not match dimensionality")
)

// InitialPointGenerator 產生最佳化 / 模擬用的初始點。
type InitialPointGenerator interface {
	// Generate 在 dims 組成的空間中產生 n 個原生尺度的點。
	Generate(dims []space.Dimension, n int, rs core.RandomState) ([]space.Point, error)
	// GenerateSpace 與 Generate 相同，但直接使用呼叫端的 Space（轉換模式會被還原）。
	GenerateSpace(sp *space.Space, n int, rs core.RandomState) ([]space.Point, error)
	// Sample 產生 n x nDim 的單位尺度樣本，並回報實際使用的質數與 skip。
	Sample(nDim, n int, rs core.RandomState) (*Batch, error)
}

// Batch 一次取樣的結果
type Batch struct {
	Primes []int      // 每個維度使用的進位基底
	Skip   int        // 所有索引共同的位移
	Unit   *mat.Dense // n x nDim，值域 [0,1]
}

// generateOn 以 normalize 模式把單位樣本還原為原生點，結束後還原 Space 原本的轉換模式。
func generateOn(sp *space.Space, n int, rs core.RandomState, sample func(nDim, n int, rs core.RandomState) (*Batch, error)) (pts []space.Point, err error) {
	if sp == nil {
		return nil, space.ErrEmptySpace
	}
	prev := sp.Transformer()
	if err := sp.SetTransformer(space.TransformNormalize); err != nil {
		return nil, err
	}
	defer func() {
		if rerr := sp.SetTransformer(prev); rerr != nil && err == nil {
			pts, err = nil, rerr
		}
	}()

	b, err := sample(sp.NDims(), n, rs)
	if err != nil {
		return nil, err
	}
	return sp.InverseTransform(b.Unit)
}

func checkSize(nDim, n int) error {
	if nDim < 1 {
		return errs.Warnf("dimensionality must be >= 1, got %d", nDim)
	}
	if n < 1 {
		return errs.Warnf("n_samples must be >= 1, got %d", n)
	}
	return nil
}
