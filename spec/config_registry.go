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

package spec

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"path"
	"strings"

	"github.com/zintix-labs/seqlab/errs"
	"gopkg.in/yaml.v3"
)

// GetGeneratorSettingByYAML
// 讀取 YAML 設定（嚴格模式：拼錯欄位即報錯）、初始化並檢查後回傳。
func GetGeneratorSettingByYAML(data []byte) (*GeneratorSetting, error) {
	gs := NewGeneratorSetting()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(gs); err != nil {
		return nil, decodeErr("failed to unmarshal yaml", err)
	}
	if err := gs.Init(); err != nil {
		return nil, errs.Wrap(err, "generator setting initialized err")
	}
	return gs, nil
}

// GetGeneratorSettingByJSON
// 讀取 JSON 設定（不允許未知欄位）、初始化並檢查後回傳。
func GetGeneratorSettingByJSON(data []byte) (*GeneratorSetting, error) {
	gs := NewGeneratorSetting()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(gs); err != nil {
		return nil, decodeErr("can not unmarshal json byte", err)
	}
	if err := gs.Init(); err != nil {
		return nil, errs.Wrap(err, "generator setting initialized err")
	}
	return gs, nil
}

// LoadGeneratorSetting 從 fsys 讀取 name，依副檔名選擇 YAML（.yaml/.yml）或 JSON。
func LoadGeneratorSetting(fsys fs.FS, name string) (*GeneratorSetting, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errs.Wrapf(err, "read setting %s", name)
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return GetGeneratorSettingByJSON(raw)
	case ".yaml", ".yml":
		return GetGeneratorSettingByYAML(raw)
	default:
		return nil, errs.Warnf("setting %s: unsupported extension (want .yaml, .yml or .json)", name)
	}
}

// decodeErr 解碼失敗屬於輸入問題，等級為 Warn。
func decodeErr(msg string, cause error) error {
	e := errs.NewWarn(msg)
	e.Extra = "generator setting"
	e.Cause = cause
	return e
}
