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
package demo

import (
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	for _, want := range []string{"hyperparams.yaml", "unit_square.json"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing %s in %v", want, names)
		}
	}
}

func TestAllSettingsLoad(t *testing.T) {
	for _, name := range Names() {
		gs, err := Setting(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		gen, err := gs.NewGenerator(nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		pts, err := gen.Generate(gs.Dims(), gs.NSamples, gs.RandomState())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(pts) != gs.NSamples {
			t.Fatalf("%s: got %d points", name, len(pts))
		}
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Vaild(); err != nil {
		t.Fatalf("config should be valid: %v", err)
	}
	if cfg.MaxSamples <= 0 || cfg.Defaults.NSamples != 12 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
