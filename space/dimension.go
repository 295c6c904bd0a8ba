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

// Package space 定義搜尋空間（參數空間）的維度與座標轉換。
//
// 每個維度都可以在兩種尺度之間轉換：
//   - 原生尺度（native）：real 為浮點數、integer 為整數、categorical 為類別值本身。
//   - 單位尺度（unit）：所有維度都映射到 [0,1]，低差異序列在這個尺度上取樣。
//
// Space 持有目前的轉換模式（identity / normalize），取樣器在取樣期間切換到 normalize，
// 結束後還原。
package space

import (
	"math"
	"strings"

	"github.com/zintix-labs/seqlab/errs"
	"gonum.org/v1/gonum/spatial/r1"
)

// unitTol 單位尺度的容忍誤差，超出 [0-unitTol, 1+unitTol] 視為錯誤輸入。
const unitTol = 1e-8

var (
	ErrInvalidBounds      = errs.NewWarn("invalid dimension bounds")
	ErrUnknownPrior       = errs.NewWarn("unknown prior")
	ErrUnknownKind        = errs.NewWarn("unknown dimension type")
	ErrUnknownTransformer = errs.NewWarn("unknown transformer")
	ErrOutOfUnit          = errs.NewWarn("value outside the unit interval")
	ErrUnknownCategory    = errs.NewWarn("unknown category")
	ErrValueType          = errs.NewWarn("value has wrong type for dimension")
	ErrEmptySpace         = errs.NewWarn("space requires at least one dimension")
)

// Kind 維度種類
type Kind uint8

const (
	KindReal Kind = iota
	KindInteger
	KindCategorical
)

var kindNames = map[Kind]string{
	KindReal:        "real",
	KindInteger:     "integer",
	KindCategorical: "categorical",
}

func (k Kind) String() string {
	return kindNames[k]
}

// ParseKind 解析設定檔中的維度種類字串（大小寫不拘）。
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, errs.Wrapf(ErrUnknownKind, "dimension type %q", s)
}

// Prior real 維度的先驗分布
type Prior uint8

const (
	PriorUniform Prior = iota
	PriorLogUniform
)

func (p Prior) String() string {
	switch p {
	case PriorLogUniform:
		return "log-uniform"
	default:
		return "uniform"
	}
}

// ParsePrior 解析 prior 字串；空字串視為 uniform。
func ParsePrior(s string) (Prior, error) {
	switch strings.ToLower(s) {
	case "", "uniform":
		return PriorUniform, nil
	case "log-uniform", "loguniform", "log_uniform":
		return PriorLogUniform, nil
	default:
		return 0, errs.Wrapf(ErrUnknownPrior, "prior %q", s)
	}
}

// Transformer 座標轉換模式
type Transformer uint8

const (
	// TransformIdentity 不做尺度轉換；integer / categorical 仍以四捨五入取得整數或索引。
	TransformIdentity Transformer = iota
	// TransformNormalize 所有維度映射到 [0,1]。
	TransformNormalize
)

func (t Transformer) String() string {
	switch t {
	case TransformNormalize:
		return "normalize"
	default:
		return "identity"
	}
}

func ParseTransformer(s string) (Transformer, error) {
	switch strings.ToLower(s) {
	case "", "identity":
		return TransformIdentity, nil
	case "normalize":
		return TransformNormalize, nil
	default:
		return 0, errs.Wrapf(ErrUnknownTransformer, "transformer %q", s)
	}
}

// Dimension 描述搜尋空間的一個軸。
type Dimension interface {
	// Name 維度名稱，可為空。
	Name() string
	// Kind 維度種類。
	Kind() Kind
	// Bounds 原生尺度的範圍；categorical 為索引範圍 [0, n-1]。
	Bounds() r1.Interval
	// Transform 原生值 → 轉換尺度。
	Transform(v any, mode Transformer) (float64, error)
	// InverseTransform 轉換尺度 → 原生值。
	InverseTransform(x float64, mode Transformer) (any, error)
}

// checkUnit 檢查 x 是否落在 [0,1]（含容忍誤差），並夾回 [0,1]。
func checkUnit(x float64) (float64, error) {
	if math.IsNaN(x) || x < -unitTol || x > 1+unitTol {
		return 0, errs.Wrapf(ErrOutOfUnit, "got %v", x)
	}
	return clip(x, 0, 1), nil
}

func clip(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// toFloat 將設定檔 / JSON 常見的數值型別轉為 float64。
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
