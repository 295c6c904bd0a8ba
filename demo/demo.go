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

// Package demo 提供內嵌的範例設定，給 CLI 預設值、server 與測試使用。
package demo

import (
	"io/fs"
	"sort"

	"github.com/zintix-labs/seqlab/demo/demo_configs"
	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/server/logger"
	"github.com/zintix-labs/seqlab/server/svrcfg"
	"github.com/zintix-labs/seqlab/spec"
)

// DefaultSetting CLI 未指定設定檔時使用的範例名稱
const DefaultSetting = "hyperparams.yaml"

// Names 列出所有內嵌範例設定（排序後）。
func Names() []string {
	entries, err := fs.ReadDir(demo_configs.FS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Setting 讀取指定名稱的內嵌範例設定
func Setting(name string) (*spec.GeneratorSetting, error) {
	return spec.LoadGeneratorSetting(demo_configs.FS, name)
}

func NewServerConfig() (*svrcfg.SvrCfg, error) {
	gs, err := Setting(DefaultSetting)
	if err != nil {
		return nil, errs.Wrap(err, "load demo setting failed")
	}
	scfg := &svrcfg.SvrCfg{
		Log:      logger.NewDefaultAsyncLogger(logger.ModeDev),
		Defaults: gs,
	}
	return scfg, nil
}
