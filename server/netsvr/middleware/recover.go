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
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/server/httperr"
)

// Recover 以 chimid.Recoverer 攔截 handler 的 panic（例如違反前置條件的 VanDerCorput 呼叫）。
// 透過 chi 的 LogEntry 取得 panic 值：記錄到 log，並在尚未寫出回應時回 JSON 500。
// http.ErrAbortHandler 由 Recoverer 繼續往上拋。
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := chimid.Recoverer(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pw := &panicWriter{ResponseWriter: w}
			entry := &panicEntry{log: log, reqID: GetReqId(r), w: pw}
			guarded.ServeHTTP(pw, chimid.WithLogEntry(r, entry))
		})
	}
}

// panicEntry 實作 chimid.LogEntry；存取紀錄由 AccessLog 負責，這裡只處理 Panic。
type panicEntry struct {
	log   *slog.Logger
	reqID string
	w     *panicWriter
}

func (e *panicEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
}

func (e *panicEntry) Panic(v interface{}, stack []byte) {
	if e.log != nil {
		e.log.Error("panic recovered",
			slog.String("req_id", e.reqID),
			slog.Any("panic", v),
			slog.String("stack", string(stack)),
		)
	}
	if !e.w.wrote {
		httperr.Errs(e.w, errs.Fatalf("internal error: %v", v))
	}
}

// panicWriter 記錄回應是否已開始；之後的 WriteHeader（Recoverer 補寫的 500）不再往下傳。
type panicWriter struct {
	http.ResponseWriter
	wrote bool
}

func (p *panicWriter) WriteHeader(code int) {
	if p.wrote {
		return
	}
	p.wrote = true
	p.ResponseWriter.WriteHeader(code)
}

func (p *panicWriter) Write(b []byte) (int, error) {
	p.wrote = true
	return p.ResponseWriter.Write(b)
}

func (p *panicWriter) Unwrap() http.ResponseWriter { return p.ResponseWriter }
