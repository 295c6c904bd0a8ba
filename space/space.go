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
	"github.com/zintix-labs/seqlab/errs"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// Point 原生尺度下的一個樣本點，長度等於維度數。
// 元素型別：real → float64、integer → int、categorical → 類別值。
type Point []any

// Space 由有序維度組成的搜尋空間。
//
// Space 不是 goroutine-safe：轉換模式是可變狀態。
type Space struct {
	dims []Dimension
	mode Transformer
}

// New 以維度列表建立 Space，預設轉換模式為 identity。
func New(dims ...Dimension) (*Space, error) {
	if len(dims) == 0 {
		return nil, ErrEmptySpace
	}
	for i, d := range dims {
		if d == nil {
			return nil, errs.Wrapf(ErrValueType, "dimension %d is nil", i)
		}
	}
	return &Space{dims: append([]Dimension(nil), dims...)}, nil
}

// NDims 維度數
func (s *Space) NDims() int { return len(s.dims) }

// Dimensions 回傳維度列表的副本。
func (s *Space) Dimensions() []Dimension { return append([]Dimension(nil), s.dims...) }

// Transformer 目前的轉換模式
func (s *Space) Transformer() Transformer { return s.mode }

// SetTransformer 設定轉換模式
func (s *Space) SetTransformer(mode Transformer) error {
	switch mode {
	case TransformIdentity, TransformNormalize:
		s.mode = mode
		return nil
	default:
		return errs.Wrapf(ErrUnknownTransformer, "transformer %d", mode)
	}
}

// Bounds 各維度原生尺度的範圍
func (s *Space) Bounds() []r1.Interval {
	out := make([]r1.Interval, len(s.dims))
	for i, d := range s.dims {
		out[i] = d.Bounds()
	}
	return out
}

// Transform 原生點 → 轉換尺度矩陣（樣本 x 維度）。
func (s *Space) Transform(points []Point) (*mat.Dense, error) {
	if len(points) == 0 {
		return nil, errs.NewWarn("transform requires at least one point")
	}
	out := mat.NewDense(len(points), len(s.dims), nil)
	for i, p := range points {
		if len(p) != len(s.dims) {
			return nil, errs.Warnf("point %d has %d values, space has %d dimensions", i, len(p), len(s.dims))
		}
		for j, d := range s.dims {
			x, err := d.Transform(p[j], s.mode)
			if err != nil {
				return nil, errs.Wrapf(err, "point %d dimension %d", i, j)
			}
			out.Set(i, j, x)
		}
	}
	return out, nil
}

// InverseTransform 轉換尺度矩陣（樣本 x 維度）→ 原生點。
// 任一值無法還原時回傳錯誤，不回傳部分結果。
func (s *Space) InverseTransform(x mat.Matrix) ([]Point, error) {
	r, c := x.Dims()
	if c != len(s.dims) {
		return nil, errs.Warnf("matrix has %d columns, space has %d dimensions", c, len(s.dims))
	}
	out := make([]Point, r)
	for i := 0; i < r; i++ {
		p := make(Point, c)
		for j, d := range s.dims {
			v, err := d.InverseTransform(x.At(i, j), s.mode)
			if err != nil {
				return nil, errs.Wrapf(err, "sample %d dimension %d", i, j)
			}
			p[j] = v
		}
		out[i] = p
	}
	return out, nil
}
