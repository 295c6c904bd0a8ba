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
package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zintix-labs/seqlab/stats"
)

func withConfig(t *testing.T, c config) {
	t.Helper()
	prev := cfg
	cfg = &c
	t.Cleanup(func() { cfg = prev })
}

func silent() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestRunDemoJSON(t *testing.T) {
	withConfig(t, config{demo: "hyperparams.yaml", n: 7, seed: 3, format: "json"})
	var buf bytes.Buffer
	if err := run(&buf, silent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rep stats.Report
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.NSamples != 7 || len(rep.Dimensions) != 4 {
		t.Fatalf("unexpected report: n=%d dims=%v", rep.NSamples, rep.Dimensions)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.json")
	raw := `{"n_samples":4,"dimensions":[{"name":"z","low":0,"high":1}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	withConfig(t, config{config: path, seed: -1, format: "table"})
	var buf bytes.Buffer
	if err := run(&buf, silent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "| z ") {
		t.Fatalf("table missing dimension z:\n%s", buf.String())
	}
}

func TestRunCompare(t *testing.T) {
	withConfig(t, config{compare: 2, compareN: 32, compareDim: 2, seed: -1, format: "yaml"})
	var buf bytes.Buffer
	if err := run(&buf, silent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "halton:") || !strings.Contains(buf.String(), "trials: 2") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRunList(t *testing.T) {
	withConfig(t, config{list: true})
	var buf bytes.Buffer
	if err := run(&buf, silent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "unit_square.json") {
		t.Fatalf("list missing demo: %s", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	cases := []config{
		{demo: "hyperparams.yaml", format: "csv", seed: -1},
		{demo: "missing.yaml", format: "json", seed: -1},
		{demo: "hyperparams.yaml", format: "json", seed: -1, n: -3},
	}
	for i, c := range cases {
		withConfig(t, c)
		if err := run(&bytes.Buffer{}, silent()); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
