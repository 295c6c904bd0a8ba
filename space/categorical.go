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

package space

import (
	"math"
	"reflect"

	"github.com/zintix-labs/seqlab/errs"
	"gonum.org/v1/gonum/spatial/r1"
)

// Categorical 有限類別維度。
//
// normalize 模式下第 i 個類別對應 i/(n-1)，反轉時以 round(x*(n-1)) 取回索引，
// 所以每個類別在單位區間上佔有等寬的區段（兩端類別各佔半段）。
type Categorical struct {
	name       string
	categories []any
}

// NewCategorical 建立 Categorical 維度；類別需至少一個、可比較且不重複。
func NewCategorical(name string, categories ...any) (*Categorical, error) {
	if len(categories) == 0 {
		return nil, errs.Wrapf(ErrInvalidBounds, "categorical %q: no categories", name)
	}
	for i, c := range categories {
		if c == nil || !reflect.TypeOf(c).Comparable() {
			return nil, errs.Wrapf(ErrValueType, "categorical %q: category %d (%T) is not comparable", name, i, c)
		}
		for j := 0; j < i; j++ {
			if categories[j] == c {
				return nil, errs.Wrapf(ErrInvalidBounds, "categorical %q: duplicate category %v", name, c)
			}
		}
	}
	return &Categorical{name: name, categories: append([]any(nil), categories...)}, nil
}

func (d *Categorical) Name() string { return d.name }
func (d *Categorical) Kind() Kind   { return KindCategorical }

// Categories 回傳類別列表的副本。
func (d *Categorical) Categories() []any { return append([]any(nil), d.categories...) }

func (d *Categorical) Bounds() r1.Interval {
	return r1.Interval{Min: 0, Max: float64(len(d.categories) - 1)}
}

func (d *Categorical) Transform(v any, mode Transformer) (float64, error) {
	idx := d.index(v)
	if idx < 0 {
		return 0, errs.Wrapf(ErrUnknownCategory, "categorical %q: %v", d.name, v)
	}
	if mode != TransformNormalize {
		return float64(idx), nil
	}
	if len(d.categories) == 1 {
		return 0, nil
	}
	return float64(idx) / float64(len(d.categories)-1), nil
}

func (d *Categorical) InverseTransform(x float64, mode Transformer) (any, error) {
	last := float64(len(d.categories) - 1)
	if mode == TransformNormalize {
		u, err := checkUnit(x)
		if err != nil {
			return nil, errs.Wrapf(err, "categorical %q", d.name)
		}
		x = u * last
	}
	idx := int(clip(math.RoundToEven(x), 0, last))
	return d.categories[idx], nil
}

func (d *Categorical) index(v any) int {
	if v == nil || !reflect.TypeOf(v).Comparable() {
		return -1
	}
	for i, c := range d.categories {
		if c == v {
			return i
		}
	}
	return -1
}
