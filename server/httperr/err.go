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
// Package httperr 是 HTTP 邊界層：把 errs 分級映射成 status code 並寫回 JSON 錯誤。
package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zintix-labs/seqlab/errs"
)

// Body 錯誤回應格式
type Body struct {
	Status int    `json:"status"`
	Level  string `json:"level,omitempty"`
	Error  string `json:"error"`
}

// StatusCode 將錯誤映射成 HTTP status code：
//   - ctx timeout / cancel → 504 / 408
//   - errs.Warn            → 400（請求或參數問題）
//   - 其他（含 errs.Fatal） → 500
func StatusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}
	var e *errs.E
	if errors.As(err, &e) && e.ErrLv == errs.Warn {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Errs 寫回 JSON 錯誤；err 為 nil 時不做任何事。
func Errs(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	status := StatusCode(err)
	b := Body{Status: status, Error: err.Error()}
	if lv := errs.LevelOf(err); lv != errs.None {
		b.Level = lv.String()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(b)
}

// Log 依 status 決定 log 等級：5xx 為 error，408/409/429 為 warn，其餘請求錯誤為 debug。
func Log(log *slog.Logger, msg string, err error) {
	if err == nil || log == nil {
		return
	}
	status := StatusCode(err)
	switch {
	case status >= 500:
		log.Error(msg, slog.Int("status", status), slog.Any("err", err))
	case status == http.StatusRequestTimeout, status == http.StatusConflict, status == http.StatusTooManyRequests:
		log.Warn(msg, slog.Int("status", status), slog.Any("err", err))
	default:
		log.Debug(msg, slog.Int("status", status), slog.Any("err", err))
	}
}
