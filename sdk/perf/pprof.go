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
// Package perf 包裝 runtime/pprof，讓 CLI 以 -p 旗標對整段執行做 profiling。
package perf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
)

// Dir pprof 檔案寫入路徑
var Dir = "build/profiling"

// RunPProf 依 mode 執行 exe 並寫出對應的 profile：
//
//	""      只執行 exe
//	cpu     build/profiling/cpu.pprof（可作為 PGO 的 default.pgo）
//	heap    exe 結束後的 in-use 快照
//	allocs  exe 期間的累積配置
//
// 未知的 mode 視同 ""。
func RunPProf(exe func(), mode string) {
	switch mode {
	case "cpu":
		PProfCPU(exe)
	case "heap":
		PProfHeap(exe)
	case "allocs":
		PProfAllocs(exe)
	default:
		exe()
	}
}

// PProfCPU 在 exe 執行期間開啟 CPU profiling
//
// Usage like:
//
//	go run ./cmd/gen -n 20000 -p cpu
//	go tool pprof build/profiling/cpu.pprof
func PProfCPU(exe func()) {
	f := create("cpu.pprof")
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		panic("failed to start pprof : " + err.Error())
	}
	defer pprof.StopCPUProfile()

	exe()
}

// PProfHeap 在 exe 後先 GC 再寫出 heap 快照，較貼近 live objects。
func PProfHeap(exe func()) {
	exe()
	runtime.GC()
	writeLookup("heap", "heap.pprof")
}

// PProfAllocs 在 exe 後寫出累積配置（搭配 -sample_index=alloc_space 查看）。
func PProfAllocs(exe func()) {
	exe()
	writeLookup("allocs", "allocs.pprof")
}

func writeLookup(profile, file string) {
	f := create(file)
	defer f.Close()
	if prof := pprof.Lookup(profile); prof != nil {
		if err := prof.WriteTo(f, 0); err != nil {
			panic(fmt.Sprintf("failed to write %s profile : %v", profile, err))
		}
	}
}

func create(file string) *os.File {
	// 確保目錄存在
	_ = os.MkdirAll(Dir, 0o755)
	f, err := os.Create(filepath.Join(Dir, file))
	if err != nil {
		panic("failed to create " + file + " : " + err.Error())
	}
	return f
}
