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
// Package server 組裝 seqlab 的 HTTP 服務：驗證設定、建立 chi server、註冊路由並交給 app 管理生命週期。
package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/server/api"
	"github.com/zintix-labs/seqlab/server/app"
	"github.com/zintix-labs/seqlab/server/netsvr"
	"github.com/zintix-labs/seqlab/server/svrcfg"
)

// Run 以預設的 chi server（:5808）啟動服務，阻塞直到收到終止信號或 server 出錯。
//
// 所有依賴（logger、預設產生器設定）都由 SvrCfg 注入，本函數不讀取檔案或環境變數。
func Run(sCfg *svrcfg.SvrCfg) {
	RunWithSvr(sCfg, netsvr.NewChiServerDefault())
}

// RunWithSvr 與 Run 相同，但使用呼叫端注入的 NetSvr（自訂位址、timeout 或其他框架的 adapter）。
//
// 設定驗證失敗時錯誤會額外輸出到 stderr，避免組裝失敗卻沒有 log 可看。
func RunWithSvr(sCfg *svrcfg.SvrCfg, svr netsvr.NetSvr) {
	if err := sCfg.Vaild(); err != nil {
		// 防止外層傳入的logger不可用
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if svr == nil {
		sCfg.Log.Error(errs.NewFatal("svr is required").Error())
		return
	}
	addr := ""
	if s, ok := svr.(*netsvr.ChiAdapter); ok {
		if !s.Ready() {
			sCfg.Log.Error(errs.NewFatal("default server is not ready").Error())
			return
		}
		addr = s.Address()
	}

	// 註冊 Api
	if err := api.RegisterRoutes(svr, sCfg); err != nil {
		sCfg.Log.Error("register routes failed", slog.Any("err", err))
		return
	}

	// 運行
	a := app.NewWith(svr)
	sCfg.Log.Info("[seqlab] listening", slog.String("addr", addr))
	if err := a.Run(); err != nil {
		sCfg.Log.Error("app stopped", slog.Any("err", err))
	}
}
