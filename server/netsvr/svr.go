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
// Package netsvr 抽象 HTTP server：路由註冊（NetRouter）與啟停（app.Component）分開，
// api 套件只面向 NetRouter，換框架時只需新增一個 adapter。
package netsvr

import (
	"net/http"

	"github.com/zintix-labs/seqlab/server/app"
)

// NetSvr 路由 + 生命週期，只交給最外層組裝者（server.Run）。
type NetSvr interface {
	NetRouter
	app.Component
}

// NetRouter 純路由行為。Group 回呼只拿得到 NetRouter，無法控制 server 啟停。
type NetRouter interface {
	Use(middleware func(http.Handler) http.Handler)

	Get(path string, h http.HandlerFunc)
	Post(path string, h http.HandlerFunc)
	Put(path string, h http.HandlerFunc)
	Delete(path string, h http.HandlerFunc)

	Group(path string, fn func(NetRouter))
}
