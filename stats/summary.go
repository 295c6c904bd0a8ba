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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DimSummary 單一維度的單位尺度統計
type DimSummary struct {
	Name string  `json:"name" yaml:"name"`
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std"  yaml:"std"`
	Min  float64 `json:"min"  yaml:"min"`
	Max  float64 `json:"max"  yaml:"max"`
}

// Summarize 逐欄計算 mean / std / min / max。
// names 不足時以 "x<j>" 補齊；樣本數小於 2 時 std 記為 0。
func Summarize(names []string, unit mat.Matrix) []DimSummary {
	if unit == nil {
		return nil
	}
	n, d := unit.Dims()
	if n == 0 || d == 0 {
		return nil
	}
	out := make([]DimSummary, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, unit)
		mean, std := stat.MeanStdDev(col, nil)
		if n < 2 {
			std = 0
		}
		name := fmt.Sprintf("x%d", j)
		if j < len(names) && names[j] != "" {
			name = names[j]
		}
		out[j] = DimSummary{
			Name: name,
			Mean: mean,
			Std:  std,
			Min:  floats.Min(col),
			Max:  floats.Max(col),
		}
	}
	return out
}
