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

	"github.com/zintix-labs/seqlab/errs"
	"gonum.org/v1/gonum/spatial/r1"
)

// Integer 整數有界維度 [Low, High]（含兩端）。
type Integer struct {
	name string
	low  int
	high int
}

// NewInteger 建立 Integer 維度，需 low < high。
func NewInteger(name string, low, high int) (*Integer, error) {
	if low >= high {
		return nil, errs.Wrapf(ErrInvalidBounds, "integer %q: need low < high, got [%d, %d]", name, low, high)
	}
	return &Integer{name: name, low: low, high: high}, nil
}

func (d *Integer) Name() string { return d.name }
func (d *Integer) Kind() Kind   { return KindInteger }
func (d *Integer) Bounds() r1.Interval {
	return r1.Interval{Min: float64(d.low), Max: float64(d.high)}
}

func (d *Integer) Transform(v any, mode Transformer) (float64, error) {
	x, ok := toFloat(v)
	if !ok {
		return 0, errs.Wrapf(ErrValueType, "integer %q: %T", d.name, v)
	}
	if mode != TransformNormalize {
		return x, nil
	}
	return (x - float64(d.low)) / float64(d.high-d.low), nil
}

// InverseTransform 還原後以 round-half-to-even 取整並夾在 [low, high]。
func (d *Integer) InverseTransform(x float64, mode Transformer) (any, error) {
	if mode != TransformNormalize {
		return int(math.RoundToEven(x)), nil
	}
	u, err := checkUnit(x)
	if err != nil {
		return nil, errs.Wrapf(err, "integer %q", d.name)
	}
	v := math.RoundToEven(u*float64(d.high-d.low) + float64(d.low))
	return int(clip(v, float64(d.low), float64(d.high))), nil
}
