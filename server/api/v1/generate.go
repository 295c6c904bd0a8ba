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
package v1

import (
	"io"
	"net/http"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/spec"
	"github.com/zintix-labs/seqlab/stats"
)

// Generate POST /v1/generate
//
// Body 為 JSON 格式的 GeneratorSetting；回傳點集、實際使用的質數與 skip、逐維摘要與 discrepancy。
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.fail(w, "read body failed", &errs.E{Message: "read body failed", Cause: err, ErrLv: errs.Warn})
		return
	}
	gs, err := spec.GetGeneratorSettingByJSON(raw)
	if err != nil {
		h.fail(w, "decode generator setting failed", err)
		return
	}
	h.generate(w, r, gs)
}

// GenerateDefault GET /v1/generate
//
// 使用 server 預設設定，可用 ?n= 與 ?seed= 覆寫樣本數與種子。
func (h *Handler) GenerateDefault(w http.ResponseWriter, r *http.Request) {
	gs := *h.cfg.Defaults
	n, ok, err := queryInt(r, "n")
	if err != nil {
		h.fail(w, "parse query failed", err)
		return
	}
	if ok {
		if n < 1 {
			h.fail(w, "parse query failed", errs.Warnf("n must be >= 1, got %d", n))
			return
		}
		gs.NSamples = n
	}
	seed, ok, err := queryInt(r, "seed")
	if err != nil {
		h.fail(w, "parse query failed", err)
		return
	}
	if ok {
		s := int64(seed)
		gs.Seed = &s
	}
	h.generate(w, r, &gs)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, gs *spec.GeneratorSetting) {
	if err := h.checkSamples(gs.NSamples); err != nil {
		h.fail(w, "sample limit", err)
		return
	}
	rep, err := stats.Generate(gs, h.cfg.Log, h.cfg.MaxDiscrepancy)
	if err != nil {
		h.fail(w, "generate failed", err)
		return
	}
	h.writeReport(w, r, rep)
}
