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
	"log/slog"
	"strings"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/core"
	"github.com/zintix-labs/seqlab/sdk/sampler"
	"github.com/zintix-labs/seqlab/space"
)

const defaultNSamples int = 10

// GeneratorKind 初始點產生器種類
type GeneratorKind string

const (
	KindHalton    GeneratorKind = "halton"
	KindHammersly GeneratorKind = "hammersly"
)

// GeneratorSetting 一份完整的取樣設定：產生器、樣本數、亂數狀態與搜尋空間。
//
// n_samples 省略時為 10，明確給 0 或負值視為錯誤。
// min_skip / max_skip 省略時為 -1（未設定），對應規則見 sampler.SkipFromBounds。
type GeneratorSetting struct {
	Generator    GeneratorKind      `yaml:"generator"     json:"generator"`
	NSamples     int                `yaml:"n_samples"     json:"n_samples"`
	Seed         *int64             `yaml:"seed"          json:"seed"`
	MinSkip      int                `yaml:"min_skip"      json:"min_skip"`
	MaxSkip      int                `yaml:"max_skip"      json:"max_skip"`
	Primes       []int              `yaml:"primes"        json:"primes"`
	MaxDoublings int                `yaml:"max_doublings" json:"max_doublings"`
	Dimensions   []DimensionSetting `yaml:"dimensions"    json:"dimensions"`

	dims []space.Dimension
}

// NewGeneratorSetting 回傳帶預設值的設定（10 個樣本、skip 未設定、halton）。
// 解碼時只覆寫出現的欄位，因此預設值必須在解碼前就放好。
func NewGeneratorSetting() *GeneratorSetting {
	return &GeneratorSetting{
		Generator: KindHalton,
		NSamples:  defaultNSamples,
		MinSkip:   -1,
		MaxSkip:   -1,
	}
}

// Init 正規化欄位並建立維度；解碼後必須呼叫（Loader 會自動呼叫）。
func (gs *GeneratorSetting) Init() error {
	gs.Generator = GeneratorKind(strings.ToLower(string(gs.Generator)))
	if gs.Generator == "" {
		gs.Generator = KindHalton
	}
	if err := gs.valid(); err != nil {
		return err
	}
	dims, err := BuildDimensions(gs.Dimensions)
	if err != nil {
		return err
	}
	gs.dims = dims
	return nil
}

// valid 基本檢查；維度細節由 space 建構時檢查。
func (gs *GeneratorSetting) valid() error {
	switch gs.Generator {
	case KindHalton, KindHammersly:
	default:
		return errs.Warnf("generator: unknown kind %q", gs.Generator)
	}
	if gs.NSamples < 1 {
		return errs.Warnf("n_samples must be >= 1, got %d", gs.NSamples)
	}
	if err := gs.SkipPolicy().Valid(); err != nil {
		return err
	}
	if len(gs.Dimensions) == 0 {
		return space.ErrEmptySpace
	}
	return nil
}

// Dims 已建立的維度（Init 之後才有值）。
func (gs *GeneratorSetting) Dims() []space.Dimension {
	return append([]space.Dimension(nil), gs.dims...)
}

// SkipPolicy 由 min_skip / max_skip 推得的 skip 策略
func (gs *GeneratorSetting) SkipPolicy() sampler.SkipPolicy {
	return sampler.SkipFromBounds(gs.MinSkip, gs.MaxSkip)
}

// RandomState seed 省略時使用 process 預設來源。
func (gs *GeneratorSetting) RandomState() core.RandomState {
	return core.SeedPtr(gs.Seed)
}

// HaltonConfig 轉為 sampler 的設定
func (gs *GeneratorSetting) HaltonConfig(log *slog.Logger) sampler.HaltonConfig {
	return sampler.HaltonConfig{
		Skip:         gs.SkipPolicy(),
		Primes:       gs.Primes,
		MaxDoublings: gs.MaxDoublings,
		Log:          log,
	}
}

// NewGenerator 依 generator 欄位建立產生器。
func (gs *GeneratorSetting) NewGenerator(log *slog.Logger) (sampler.InitialPointGenerator, error) {
	cfg := gs.HaltonConfig(log)
	switch gs.Generator {
	case KindHammersly:
		return sampler.NewHammersly(cfg)
	default:
		return sampler.NewHalton(cfg)
	}
}
