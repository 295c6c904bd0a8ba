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
// ops 是跨平台的開發腳本入口，取代 Makefile：
//
//	go run ./scripts test         # 只顯示 ok / FAIL 行
//	go run ./scripts test-all     # 全部套件 + coverage
//	go run ./scripts test-detail  # verbose，過濾 [no test files]
//	go run ./scripts demo         # 以內嵌範例產生點集
//	go run ./scripts compare      # Halton vs 亂數 discrepancy 比較
//	go run ./scripts pprof        # 以 cpu profile 執行 cmd/gen
//	go run ./scripts svr          # 啟動 HTTP server
package main

import (
	"fmt"
	"os"
)

type task struct {
	title  string
	clean  bool     // 先清除 test cache
	args   []string // go 子指令
	filter lineFilter
}

var tasks = map[string]task{
	"test":        {title: "running tests", clean: true, args: []string{"test", "./...", "-cover", "-count=1"}, filter: okFailOnly},
	"test-all":    {title: "running tests (all with coverage)", clean: true, args: []string{"test", "./...", "-cover"}},
	"test-detail": {title: "running tests (detail)", clean: true, args: []string{"test", "./...", "-v", "-count=1"}, filter: dropNoTestFiles},
	"demo":        {title: "generating demo points", args: []string{"run", "./cmd/gen"}},
	"compare":     {title: "comparing halton with uniform random", args: []string{"run", "./cmd/gen", "-compare", "30", "-compare-n", "512", "-compare-dim", "4"}},
	"pprof":       {title: "profiling cmd/gen (build/profiling/cpu.pprof)", args: []string{"run", "./cmd/gen", "-n", "20000", "-format", "json", "-p", "cpu"}},
	"svr":         {title: "starting server on :5808", args: []string{"run", "./cmd/svr"}},
}

func main() {
	// 沒有帶 task 時顯示用法
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts [test|test-all|test-detail|demo|compare|pprof|svr]")
		os.Exit(1)
	}
	t, ok := tasks[os.Args[1]]
	if !ok {
		PrintYellow(fmt.Sprintf("Unknown task: %s", os.Args[1]))
		os.Exit(1)
	}
	if err := t.run(); err != nil {
		PrintRed(fmt.Sprintf("\n%s finished with errors: %v\n", os.Args[1], err))
		os.Exit(1) // 讓呼叫端（CI）知道失敗
	}
}
