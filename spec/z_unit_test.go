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
	"errors"
	"testing"
	"testing/fstest"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/sampler"
	"github.com/zintix-labs/seqlab/space"
)

const yamlSetting = `
generator: halton
n_samples: 5
seed: 7
min_skip: 3
max_skip: 3
primes: [2, 3]
dimensions:
  - {name: lr, type: real, low: 0.0001, high: 1, prior: log-uniform}
  - {name: depth, type: integer, low: 1, high: 4}
  - {name: act, categories: [relu, tanh]}
`

func TestGetGeneratorSettingByYAML(t *testing.T) {
	gs, err := GetGeneratorSettingByYAML([]byte(yamlSetting))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Generator != KindHalton || gs.NSamples != 5 {
		t.Fatalf("unexpected setting: %+v", gs)
	}
	if gs.Seed == nil || *gs.Seed != 7 || !gs.RandomState().IsSeeded() {
		t.Fatalf("seed not decoded")
	}
	if p := gs.SkipPolicy(); p != sampler.FixedSkip(3) {
		t.Fatalf("skip policy = %v", p)
	}
	dims := gs.Dims()
	if len(dims) != 3 {
		t.Fatalf("dims = %d", len(dims))
	}
	wantKinds := []space.Kind{space.KindReal, space.KindInteger, space.KindCategorical}
	for i, d := range dims {
		if d.Kind() != wantKinds[i] {
			t.Fatalf("dim %d kind = %v, want %v", i, d.Kind(), wantKinds[i])
		}
	}
	if r := dims[0].(*space.Real); r.Prior() != space.PriorLogUniform {
		t.Fatalf("prior = %v", r.Prior())
	}

	gen, err := gs.NewGenerator(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts, err := gen.Generate(gs.Dims(), gs.NSamples, gs.RandomState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 5 || len(pts[0]) != 3 {
		t.Fatalf("unexpected shape: %d x %d", len(pts), len(pts[0]))
	}
}

func TestSettingDefaults(t *testing.T) {
	gs, err := GetGeneratorSettingByYAML([]byte("dimensions:\n  - {low: 0, high: 1}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Generator != KindHalton || gs.NSamples != defaultNSamples {
		t.Fatalf("defaults not applied: %+v", gs)
	}
	if gs.SkipPolicy().Kind != sampler.SkipMaxPrime {
		t.Fatalf("omitted skip bounds should map to max-prime, got %v", gs.SkipPolicy())
	}
	if gs.RandomState().IsSeeded() {
		t.Fatalf("omitted seed should not be seeded")
	}
}

func TestGetGeneratorSettingByJSON(t *testing.T) {
	raw := `{"generator":"Hammersly","n_samples":4,"min_skip":-1,"max_skip":6,
		"dimensions":[{"name":"x","low":-1,"high":1},{"name":"c","type":"categorical","categories":[1,2,3]}]}`
	gs, err := GetGeneratorSettingByJSON([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Generator != KindHammersly {
		t.Fatalf("generator = %q", gs.Generator)
	}
	if p := gs.SkipPolicy(); p != sampler.FixedSkip(6) {
		t.Fatalf("one negative bound should resolve to max: %v", p)
	}
	gen, err := gs.NewGenerator(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(*sampler.Hammersly); !ok {
		t.Fatalf("expected Hammersly, got %T", gen)
	}
}

func TestSettingErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field":   "dimensions:\n  - {low: 0, high: 1}\nbogus: 1\n",
		"no dimensions":   "n_samples: 3\n",
		"bad generator":   "generator: sobol\ndimensions:\n  - {low: 0, high: 1}\n",
		"negative n":      "n_samples: -2\ndimensions:\n  - {low: 0, high: 1}\n",
		"zero n":          "n_samples: 0\ndimensions:\n  - {low: 0, high: 1}\n",
		"bad random skip": "min_skip: 5\nmax_skip: 2\ndimensions:\n  - {low: 0, high: 1}\n",
		"bad bounds":      "dimensions:\n  - {low: 2, high: 1}\n",
		"fractional int":  "dimensions:\n  - {type: integer, low: 0.5, high: 3}\n",
		"bad prior":       "dimensions:\n  - {low: 1, high: 2, prior: normal}\n",
		"bad type":        "dimensions:\n  - {type: ordinal, low: 1, high: 2}\n",
		"empty category":  "dimensions:\n  - {type: categorical}\n",
	}
	for name, raw := range cases {
		_, err := GetGeneratorSettingByYAML([]byte(raw))
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if lv := errs.LevelOf(err); lv != errs.Warn {
			t.Fatalf("%s: expected warn level, got %v (%v)", name, lv, err)
		}
	}
	if _, err := GetGeneratorSettingByJSON([]byte(`{"dimensions":[{"low":0,"high":1}],"extra":true}`)); err == nil {
		t.Fatalf("expected error for unknown json field")
	}
	if _, err := GetGeneratorSettingByJSON([]byte(`{"n_samples":0,"dimensions":[{"low":0,"high":1}]}`)); errs.LevelOf(err) != errs.Warn {
		t.Fatalf("explicit n_samples 0 should be a warn error, got %v", err)
	}
}

func TestLoadGeneratorSetting(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yml":  {Data: []byte(yamlSetting)},
		"b.json": {Data: []byte(`{"dimensions":[{"low":0,"high":1}]}`)},
		"c.toml": {Data: []byte(`x = 1`)},
	}
	if _, err := LoadGeneratorSetting(fsys, "a.yml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if _, err := LoadGeneratorSetting(fsys, "b.json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	if _, err := LoadGeneratorSetting(fsys, "c.toml"); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := LoadGeneratorSetting(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestBuildDimensionsEmpty(t *testing.T) {
	if _, err := BuildDimensions(nil); !errors.Is(err, space.ErrEmptySpace) {
		t.Fatalf("expected ErrEmptySpace, got %v", err)
	}
}
