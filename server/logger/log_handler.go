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
// Package logger 組裝 seqlab 使用的 slog logger：依模式選擇輸出格式，並提供非阻塞的 AsyncHandler。
//
// 兩種注入方式：
//   - 直接傳入 *slog.Logger（NewDefaultLogger / NewDefaultAsyncLogger / NewAsync）。
//   - 自行組裝 slog.Handler（JSON/Text/ReplaceAttr/LevelVar...）後以 NewLogger 包裝。
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// enum LogMode
type LogMode uint8

const (
	ModeDev     LogMode = iota // text, stderr, debug
	ModeProd                   // JSON, stdout, info
	ModeSilence                // 全部丟棄
)

// ParseMode 解析 CLI 旗標（ModeDev|ModeProd|ModeSilence，大小寫不拘，可省略 Mode 前綴）。
// 無法辨識時回傳 fallback。
func ParseMode(s string, fallback LogMode) LogMode {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "mode") {
	case "dev":
		return ModeDev
	case "prod":
		return ModeProd
	case "silence":
		return ModeSilence
	default:
		return fallback
	}
}

// NewDefaultLogger 依模式建立同步 logger
func NewDefaultLogger(mode LogMode) *slog.Logger {
	return slog.New(buildHandler(mode))
}

// NewDefaultAsyncLogger 依模式建立非同步 logger
func NewDefaultAsyncLogger(mode LogMode) *slog.Logger {
	return slog.New(NewAsyncHandler(buildHandler(mode), 8192))
}

// NewLogger 以呼叫端組裝的 Handler 建立 logger；h 為 nil 時使用 ModeDev。
func NewLogger(h slog.Handler) *slog.Logger {
	if h == nil {
		h = buildHandler(ModeDev)
	}
	return slog.New(h)
}

// NewAsync 依模式建立非同步 logger，並回傳 handler 以便關閉時 drain。
func NewAsync(buf int, mode LogMode) (*slog.Logger, *AsyncHandler) {
	ah := NewAsyncHandler(buildHandler(mode), buf)
	return slog.New(ah), ah
}

// AsyncHandler 把任何 slog.Handler 變成非阻塞：
//   - Handle 只做 enqueue，背景 goroutine 逐筆交給 next 寫出。
//   - 隊列滿或已 Close 時直接丟棄並計數（Dropped），不把延遲傳回請求路徑。
//
// slog.Logger 會忽略 Handle 回傳的 error，I/O 錯誤需由 next 自行處理。
type AsyncHandler struct {
	next slog.Handler
	d    *dispatcher
}

type dispatcher struct {
	ch      chan record
	closed  chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type record struct {
	ctx context.Context
	rec slog.Record
	h   slog.Handler
}

// NewAsyncHandler 以 buf 大小的隊列包裝 next；buf <= 0 時為 1024。
func NewAsyncHandler(next slog.Handler, buf int) *AsyncHandler {
	if next == nil {
		next = buildHandler(ModeDev)
	}
	if buf <= 0 {
		buf = 1024
	}
	d := &dispatcher{
		ch:     make(chan record, buf),
		closed: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.loop()
	return &AsyncHandler{next: next, d: d}
}

func (h *AsyncHandler) Ready() bool {
	return h != nil && h.d != nil
}

// Dropped 因隊列滿或已關閉而丟棄的筆數
func (h *AsyncHandler) Dropped() uint64 {
	if !h.Ready() {
		return 0
	}
	return h.d.dropped.Load()
}

// Close 停止接收新紀錄並 drain 隊列，可重複呼叫。
func (h *AsyncHandler) Close() {
	if !h.Ready() {
		return
	}
	h.d.once.Do(func() { close(h.d.closed) })
	h.d.wg.Wait()
}

func (d *dispatcher) loop() {
	defer d.wg.Done()
	for {
		select {
		case r := <-d.ch:
			r.write()
		case <-d.closed:
			// drain 直到隊列為空
			for {
				select {
				case r := <-d.ch:
					r.write()
				default:
					return
				}
			}
		}
	}
}

func (r record) write() {
	if r.h != nil {
		_ = r.h.Handle(r.ctx, r.rec)
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Ready() {
		return nil
	}
	select {
	case <-h.d.closed:
		h.d.dropped.Add(1)
		return nil
	default:
	}

	// Clone 讓 attributes 可安全跨 goroutine
	select {
	case h.d.ch <- record{ctx: ctx, rec: r.Clone(), h: h.next}:
	default:
		h.d.dropped.Add(1)
	}
	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), d: h.d}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), d: h.d}
}

func buildHandler(mode LogMode) slog.Handler {
	switch mode {
	case ModeProd:
		// JSON + stdout，給 Loki / Promtail
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	default:
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}
