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
// Package v1 提供 /v1 路由的 HTTP handler：產生點集、查詢質數表、計算 discrepancy。
package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/server/httperr"
	"github.com/zintix-labs/seqlab/server/svrcfg"
	"github.com/zintix-labs/seqlab/stats"
)

const maxBodyBytes int64 = 5 << 20 // 5MB

// Handler 持有 server 設定，所有 v1 端點共用。
type Handler struct {
	cfg *svrcfg.SvrCfg
}

func NewHandler(sCfg *svrcfg.SvrCfg) (*Handler, error) {
	if sCfg == nil || sCfg.Defaults == nil {
		return nil, errs.NewFatal("v1 handler: server config with default setting is required")
	}
	return &Handler{cfg: sCfg}, nil
}

// writeReport 依 ?format= 渲染報表。
// 先寫入緩衝區，確保不會在寫到一半時才發生錯誤。
func (h *Handler) writeReport(w http.ResponseWriter, r *http.Request, rep *stats.Report) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	rd, err := stats.NewRender(format)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	var b bytes.Buffer
	if err := rd.Write(&b, rep); err != nil {
		h.fail(w, "render report failed", errs.Wrap(err, "render report"))
		return
	}
	w.Header().Set("Content-Type", contentType(rd))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b.Bytes())
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(v); err != nil {
		h.fail(w, "encode response failed", errs.Wrap(err, "encode response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b.Bytes())
}

// fail 記錄 5xx 並寫回錯誤
func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	httperr.Log(h.cfg.Log, msg, err)
	httperr.Errs(w, err)
}

func (h *Handler) checkSamples(n int) error {
	if n > h.cfg.MaxSamples {
		return errs.Warnf("n_samples %d exceeds server limit %d", n, h.cfg.MaxSamples)
	}
	return nil
}

func contentType(rd stats.Render) string {
	switch rd.(type) {
	case *stats.YAMLRender:
		return "application/yaml"
	case *stats.TableRender:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

func queryInt(r *http.Request, key string) (int, bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, errs.Warnf("query %s: %q is not an integer", key, raw)
	}
	return v, true, nil
}
