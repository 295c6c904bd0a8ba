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
	"fmt"
	"log/slog"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/space"
	"github.com/zintix-labs/seqlab/spec"
	"gonum.org/v1/gonum/mat"
)

// MaxDiscrepancySamples 報表預設計算 discrepancy 的樣本數上限；CenteredL2 的成本為 O(n²·d)。
const MaxDiscrepancySamples = 10_000

// Report 一次產生的結果與其單位尺度統計。
// 樣本數超過上限時 Discrepancy 為 nil。
type Report struct {
	Generator   string        `json:"generator"   yaml:"generator"`
	NSamples    int           `json:"n_samples"   yaml:"n_samples"`
	Skip        int           `json:"skip"        yaml:"skip"`
	Primes      []int         `json:"primes"      yaml:"primes"`
	Dimensions  []string      `json:"dimensions"  yaml:"dimensions"`
	Points      []space.Point `json:"points"      yaml:"points"`
	Summary     []DimSummary  `json:"summary"     yaml:"summary"`
	Discrepancy *float64      `json:"discrepancy,omitempty" yaml:"discrepancy,omitempty"`
}

// Generate 依設定產生 NSamples 個點，並附上單位尺度的逐維統計與 discrepancy。
// maxDiscrepancy 為計算 discrepancy 的樣本數上限，<= 0 使用 MaxDiscrepancySamples。
func Generate(gs *spec.GeneratorSetting, log *slog.Logger, maxDiscrepancy int) (*Report, error) {
	if gs == nil {
		return nil, errs.NewWarn("generator setting is required")
	}
	gen, err := gs.NewGenerator(log)
	if err != nil {
		return nil, err
	}
	sp, err := space.New(gs.Dims()...)
	if err != nil {
		return nil, err
	}
	if err := sp.SetTransformer(space.TransformNormalize); err != nil {
		return nil, err
	}
	b, err := gen.Sample(sp.NDims(), gs.NSamples, gs.RandomState())
	if err != nil {
		return nil, err
	}
	pts, err := sp.InverseTransform(b.Unit)
	if err != nil {
		return nil, err
	}
	return NewReport(string(gs.Generator), sp, b.Primes, b.Skip, b.Unit, pts, maxDiscrepancy)
}

// NewReport 由已產生的樣本組裝報表。unit 與 pts 的列數必須相同。
// 樣本數超過 maxDiscrepancy（<= 0 使用 MaxDiscrepancySamples）時不計算 discrepancy。
func NewReport(generator string, sp *space.Space, primes []int, skip int, unit *mat.Dense, pts []space.Point, maxDiscrepancy int) (*Report, error) {
	n, _ := unit.Dims()
	if n != len(pts) {
		return nil, errs.Fatalf("report: %d unit rows but %d points", n, len(pts))
	}
	if maxDiscrepancy <= 0 {
		maxDiscrepancy = MaxDiscrepancySamples
	}
	var cd *float64
	if n <= maxDiscrepancy {
		v, err := CenteredL2(unit)
		if err != nil {
			return nil, err
		}
		cd = &v
	}
	dims := sp.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name()
		if names[i] == "" {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}
	return &Report{
		Generator:   generator,
		NSamples:    n,
		Skip:        skip,
		Primes:      append([]int(nil), primes...),
		Dimensions:  names,
		Points:      pts,
		Summary:     Summarize(names, unit),
		Discrepancy: cd,
	}, nil
}
