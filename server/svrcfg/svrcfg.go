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
// Package svrcfg 集中 HTTP server 所需的依賴注入設定。
package svrcfg

import (
	"log/slog"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/server/logger"
	"github.com/zintix-labs/seqlab/spec"
	"github.com/zintix-labs/seqlab/stats"
)

const (
	defaultMaxSamples   int = 100_000
	defaultMaxThreshold int = 10_000_000
)

type SvrCfg struct {
	Log *slog.Logger
	// Defaults 為 GET /v1/generate 使用的預設設定，也作為請求缺欄位時的基準。
	Defaults *spec.GeneratorSetting
	// MaxSamples 單次請求允許的 n_samples 上限（保護記憶體）。
	MaxSamples int
	// MaxThreshold GET /v1/primes 允許的 threshold 上限。
	MaxThreshold int
	// MaxDiscrepancy 計算 discrepancy 的樣本數上限（O(n²·d)）。
	// /v1/generate 超過時報表省略 discrepancy；/v1/discrepancy 超過時回 400。
	MaxDiscrepancy int
}

func (sc *SvrCfg) Vaild() error {
	if sc.Log != nil {
		if ah, ok := sc.Log.Handler().(*logger.AsyncHandler); ok && !ah.Ready() {
			return errs.NewFatal("nil default log handler: async handler is nil")
		}
	} else {
		// 保持安靜、合法
		sc.Log, _ = logger.NewAsync(1024, logger.ModeDev)
	}
	if sc.MaxSamples <= 0 {
		sc.MaxSamples = defaultMaxSamples
	}
	if sc.MaxThreshold <= 0 {
		sc.MaxThreshold = defaultMaxThreshold
	}
	if sc.MaxDiscrepancy <= 0 {
		sc.MaxDiscrepancy = stats.MaxDiscrepancySamples
	}
	if sc.Defaults == nil {
		return errs.NewFatal("default generator setting is required")
	}
	return nil
}
