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

package spec

import (
	"math"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/space"
)

// DimensionSetting 設定檔中的一個維度。
//
//	- {name: lr, type: real, low: 1e-5, high: 1e-1, prior: log-uniform, base: 10}
//	- {name: depth, type: integer, low: 1, high: 8}
//	- {name: act, type: categorical, categories: [relu, tanh]}
//
// type 省略時：有 categories 視為 categorical，否則視為 real。
type DimensionSetting struct {
	Name       string  `yaml:"name"       json:"name"`
	Type       string  `yaml:"type"       json:"type"`
	Low        float64 `yaml:"low"        json:"low"`
	High       float64 `yaml:"high"       json:"high"`
	Prior      string  `yaml:"prior"      json:"prior"`
	Base       float64 `yaml:"base"       json:"base"`
	Categories []any   `yaml:"categories" json:"categories"`
}

// Build 依設定建立 space.Dimension。
func (ds DimensionSetting) Build() (space.Dimension, error) {
	kind, err := ds.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case space.KindReal:
		prior, err := space.ParsePrior(ds.Prior)
		if err != nil {
			return nil, errs.Wrapf(err, "dimension %q", ds.Name)
		}
		return space.NewRealWithPrior(ds.Name, ds.Low, ds.High, prior, ds.Base)
	case space.KindInteger:
		if ds.Low != math.Trunc(ds.Low) || ds.High != math.Trunc(ds.High) {
			return nil, errs.Wrapf(space.ErrInvalidBounds, "integer %q: bounds must be whole numbers, got [%v, %v]", ds.Name, ds.Low, ds.High)
		}
		return space.NewInteger(ds.Name, int(ds.Low), int(ds.High))
	default:
		return space.NewCategorical(ds.Name, ds.Categories...)
	}
}

func (ds DimensionSetting) kind() (space.Kind, error) {
	if ds.Type == "" {
		if len(ds.Categories) > 0 {
			return space.KindCategorical, nil
		}
		return space.KindReal, nil
	}
	k, err := space.ParseKind(ds.Type)
	if err != nil {
		return 0, errs.Wrapf(err, "dimension %q", ds.Name)
	}
	return k, nil
}

// BuildDimensions 依序建立所有維度，任一失敗即回傳錯誤。
func BuildDimensions(settings []DimensionSetting) ([]space.Dimension, error) {
	if len(settings) == 0 {
		return nil, space.ErrEmptySpace
	}
	dims := make([]space.Dimension, len(settings))
	for i, ds := range settings {
		d, err := ds.Build()
		if err != nil {
			return nil, errs.Wrapf(err, "dimensions[%d]", i)
		}
		dims[i] = d
	}
	return dims, nil
}
