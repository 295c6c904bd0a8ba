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
// Command gen 以低差異序列產生初始點，或比較 Halton 與均勻亂數的 discrepancy。
//
// Usage like:
//
//	go run ./cmd/gen
//	go run ./cmd/gen -config ./my.yaml -n 32 -format yaml
//	go run ./cmd/gen -compare 20 -compare-n 256 -compare-dim 4
//	go run ./cmd/gen -p cpu
package main

import "github.com/zintix-labs/seqlab/sdk/perf"

func main() {
	bindVar()
	perf.RunPProf(execute, cfg.pprofmode)
}
