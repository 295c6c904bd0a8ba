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
package stats

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/core"
	"github.com/zintix-labs/seqlab/sdk/sampler"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const defaultCompareMaxSkip int = 1000

// CompareConfig 比較實驗設定
type CompareConfig struct {
	NDim   int
	N      int
	Trials int
	// Seed 第 t 次試驗使用 Seed+t，Halton 的隨機 skip 與亂數基準共用同一個種子。
	Seed int64
	// MaxSkip Halton 隨機 skip 的上界（不含），<= 0 時使用 1000。
	MaxSkip int
	// ShowProgress 是否輸出進度條
	ShowProgress bool
}

// Aggregate 多次試驗的 discrepancy 統計
type Aggregate struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std"  yaml:"std"`
	Min  float64 `json:"min"  yaml:"min"`
	Max  float64 `json:"max"  yaml:"max"`
}

// Comparison Halton 與均勻亂數的 centered L2 discrepancy 比較結果
type Comparison struct {
	NDim    int           `json:"n_dim"   yaml:"n_dim"`
	N       int           `json:"n"       yaml:"n"`
	Trials  int           `json:"trials"  yaml:"trials"`
	Halton  Aggregate     `json:"halton"  yaml:"halton"`
	Random  Aggregate     `json:"random"  yaml:"random"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Compare 進行 Trials 次試驗：每次以隨機 skip 的 Halton 與 distuv.Uniform 各產生 N x NDim 樣本並計算 discrepancy。
func Compare(cfg CompareConfig) (*Comparison, error) {
	if cfg.NDim < 1 || cfg.N < 1 || cfg.Trials < 1 {
		return nil, errs.Warnf("compare: n_dim, n and trials must be >= 1, got (%d, %d, %d)", cfg.NDim, cfg.N, cfg.Trials)
	}
	if cfg.MaxSkip <= 0 {
		cfg.MaxSkip = defaultCompareMaxSkip
	}
	h, err := sampler.NewHalton(sampler.HaltonConfig{Skip: sampler.RandomSkip(0, cfg.MaxSkip)})
	if err != nil {
		return nil, err
	}

	hd := make([]float64, cfg.Trials)
	rd := make([]float64, cfg.Trials)
	rnd := mat.NewDense(cfg.N, cfg.NDim, nil)

	bar := pb.StartNew(cfg.Trials)
	if !cfg.ShowProgress {
		bar.SetWriter(io.Discard)
	}
	for t := 0; t < cfg.Trials; t++ {
		seed := cfg.Seed + int64(t)

		unit, err := h.GenerateUnit(cfg.NDim, cfg.N, core.Seed(seed))
		if err != nil {
			bar.Finish()
			return nil, err
		}
		if hd[t], err = CenteredL2(unit); err != nil {
			bar.Finish()
			return nil, err
		}

		u := distuv.Uniform{Min: 0, Max: 1, Src: core.NewWithSeed(seed)}
		for i := 0; i < cfg.N; i++ {
			for j := 0; j < cfg.NDim; j++ {
				rnd.Set(i, j, u.Rand())
			}
		}
		if rd[t], err = CenteredL2(rnd); err != nil {
			bar.Finish()
			return nil, err
		}
		bar.Increment()
	}
	used := time.Since(bar.StartTime())
	bar.Finish()

	return &Comparison{
		NDim:    cfg.NDim,
		N:       cfg.N,
		Trials:  cfg.Trials,
		Halton:  aggregate(hd),
		Random:  aggregate(rd),
		Elapsed: used,
	}, nil
}

func aggregate(x []float64) Aggregate {
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		std = 0
	}
	return Aggregate{Mean: mean, Std: std, Min: floats.Min(x), Max: floats.Max(x)}
}
