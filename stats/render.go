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
package stats

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/zintix-labs/seqlab/errs"
	"gopkg.in/yaml.v3"
)

// ReportRender 將 Report 寫到 w
type ReportRender interface {
	Write(w io.Writer, r *Report) error
}

// Json渲染
type JsonRender struct{}

func (jr *JsonRender) Write(w io.Writer, r *Report) error {
	return json.NewEncoder(w).Encode(r)
}

func (jr *JsonRender) WriteComparison(w io.Writer, c *Comparison) error {
	return json.NewEncoder(w).Encode(c)
}

// YAML渲染
type YAMLRender struct{}

func (yr *YAMLRender) Write(w io.Writer, r *Report) error {
	// 點集為二維：外層展開、每個點一行 [a, b, c]
	return forceReadableList(w, r)
}

func (yr *YAMLRender) WriteComparison(w io.Writer, c *Comparison) error {
	return forceReadableList(w, c)
}

// 表格渲染（終端機）
type TableRender struct{}

func (tr *TableRender) Write(w io.Writer, r *Report) error {
	_, err := io.WriteString(w, r.Table())
	return err
}

func (tr *TableRender) WriteComparison(w io.Writer, c *Comparison) error {
	_, err := io.WriteString(w, c.Table())
	return err
}

// Render 同時支援 Report 與 Comparison 的渲染器
type Render interface {
	ReportRender
	WriteComparison(w io.Writer, c *Comparison) error
}

// NewRender 依格式名稱（table | json | yaml）回傳渲染器。
func NewRender(format string) (Render, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return &TableRender{}, nil
	case "json":
		return &JsonRender{}, nil
	case "yaml", "yml":
		return &YAMLRender{}, nil
	default:
		return nil, errs.Warnf("unknown output format %q (want table, json or yaml)", format)
	}
}

// YAML 內層方法
func forceReadableList[T any](w io.Writer, t *T) error {
	var node yaml.Node
	if err := node.Encode(t); err != nil {
		return err
	}

	// 只有最內層的一維 sequence 使用 flow style，外層維持 block
	styleReadableSequences(&node)

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&node)
}

func styleReadableSequences(n *yaml.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case yaml.DocumentNode, yaml.MappingNode:
		for _, c := range n.Content {
			styleReadableSequences(c)
		}

	case yaml.SequenceNode:
		hasChild := false
		for _, c := range n.Content {
			if c != nil && (c.Kind == yaml.SequenceNode || c.Kind == yaml.MappingNode) {
				hasChild = true
				break
			}
		}
		for _, c := range n.Content {
			styleReadableSequences(c)
		}
		if !hasChild {
			n.Style = yaml.FlowStyle
		}
	}
}
