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
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 5 * time.Second

// App 管理多個 Component 的啟動與關閉：收到 OS 信號或任一 Component 結束時，統一進行優雅關閉。
type App struct {
	comps   []Component
	timeout time.Duration
	stop    chan struct{}
}

// New 建立一個新的 App 實例。
func New() *App {
	return &App{timeout: defaultShutdownTimeout, stop: make(chan struct{})}
}

// NewWith 建立 App 並同時註冊多個 Component。
func NewWith(comps ...Component) *App {
	app := New()
	for _, c := range comps {
		app.Register(c)
	}
	return app
}

// Register 將一個 Component 註冊到 App 中，該 Component 將在 Run 時被管理。
func (a *App) Register(c Component) {
	a.comps = append(a.comps, c)
}

// SetShutdownTimeout 設定優雅關閉的期限，<= 0 時維持預設 5 秒。
func (a *App) SetShutdownTimeout(d time.Duration) {
	if d > 0 {
		a.timeout = d
	}
}

// Stop 要求 Run 結束並進行優雅關閉，效果等同收到 SIGTERM。只能呼叫一次。
func (a *App) Stop() {
	close(a.stop)
}

// Run 並行啟動所有 Component，阻塞直到：
//   - 收到 SIGINT/SIGTERM 或 Stop()：優雅關閉後回傳關閉過程的錯誤（通常為 nil）。
//   - 任一 Component.Run 返回：優雅關閉後回傳該錯誤（http.ErrServerClosed 視為正常結束）。
func (a *App) Run() error {
	errCh := make(chan error, len(a.comps))
	for _, c := range a.comps {
		go func(c Component) {
			errCh <- c.Run()
		}(c)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		return a.gracefulShutdown()
	case <-a.stop:
		return a.gracefulShutdown()
	case err := <-errCh:
		serr := a.gracefulShutdown()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return errors.Join(err, serr)
	}
}

// gracefulShutdown 在期限內依序呼叫所有 Component.Shutdown，並合併所有錯誤。
func (a *App) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	var all []error
	for _, c := range a.comps {
		if err := c.Shutdown(ctx); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}
