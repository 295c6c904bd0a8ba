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

const defaultLogBase = 10.0

// Real 連續有界維度 [Min, Max]。
//
// log-uniform prior 會先取 log_base 再做線性正規化，
// 因此單位尺度上的均勻點在原生尺度上呈對數均勻。
type Real struct {
	name    string
	bounds  r1.Interval
	prior   Prior
	base    float64
	logBnds r1.Interval // log_base(bounds)，僅 log-uniform 使用
}

// NewReal 建立 uniform prior 的 Real 維度，需 low < high。
func NewReal(name string, low, high float64) (*Real, error) {
	return NewRealWithPrior(name, low, high, PriorUniform, 0)
}

// NewRealWithPrior 建立指定 prior 的 Real 維度。
// log-uniform 需 low > 0；base <= 0 時使用 10，否則需 base > 1。
func NewRealWithPrior(name string, low, high float64, prior Prior, base float64) (*Real, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || !(low < high) {
		return nil, errs.Wrapf(ErrInvalidBounds, "real %q: need finite low < high, got [%v, %v]", name, low, high)
	}
	r := &Real{name: name, bounds: r1.Interval{Min: low, Max: high}, prior: prior}
	switch prior {
	case PriorUniform:
	case PriorLogUniform:
		if low <= 0 {
			return nil, errs.Wrapf(ErrInvalidBounds, "real %q: log-uniform requires low > 0, got %v", name, low)
		}
		if base <= 0 {
			base = defaultLogBase
		}
		if base <= 1 {
			return nil, errs.Wrapf(ErrInvalidBounds, "real %q: log base must be > 1, got %v", name, base)
		}
		r.base = base
		r.logBnds = r1.Interval{Min: r.log(low), Max: r.log(high)}
	default:
		return nil, errs.Wrapf(ErrUnknownPrior, "real %q: prior %d", name, prior)
	}
	return r, nil
}

func (r *Real) Name() string        { return r.name }
func (r *Real) Kind() Kind          { return KindReal }
func (r *Real) Bounds() r1.Interval { return r.bounds }
func (r *Real) Prior() Prior        { return r.prior }

// Base log-uniform 的底數；uniform 時為 0。
func (r *Real) Base() float64 { return r.base }

func (r *Real) Transform(v any, mode Transformer) (float64, error) {
	x, ok := toFloat(v)
	if !ok {
		return 0, errs.Wrapf(ErrValueType, "real %q: %T", r.name, v)
	}
	if mode != TransformNormalize {
		return x, nil
	}
	if r.prior == PriorLogUniform {
		if x <= 0 {
			return 0, errs.Wrapf(ErrInvalidBounds, "real %q: log-uniform value must be > 0, got %v", r.name, x)
		}
		return (r.log(x) - r.logBnds.Min) / (r.logBnds.Max - r.logBnds.Min), nil
	}
	return (x - r.bounds.Min) / (r.bounds.Max - r.bounds.Min), nil
}

func (r *Real) InverseTransform(x float64, mode Transformer) (any, error) {
	if mode != TransformNormalize {
		return x, nil
	}
	u, err := checkUnit(x)
	if err != nil {
		return nil, errs.Wrapf(err, "real %q", r.name)
	}
	var v float64
	if r.prior == PriorLogUniform {
		v = math.Pow(r.base, u*(r.logBnds.Max-r.logBnds.Min)+r.logBnds.Min)
	} else {
		v = u*(r.bounds.Max-r.bounds.Min) + r.bounds.Min
	}
	return clip(v, r.bounds.Min, r.bounds.Max), nil
}

func (r *Real) log(x float64) float64 {
	if r.base == 10 {
		return math.Log10(x)
	}
	return math.Log(x) / math.Log(r.base)
}
