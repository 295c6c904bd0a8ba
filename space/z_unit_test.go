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

package space

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func mustSpace(t *testing.T, dims ...Dimension) *Space {
	t.Helper()
	sp, err := New(dims...)
	if err != nil {
		t.Fatalf("new space: %v", err)
	}
	return sp
}

func TestRealNormalizeRoundTrip(t *testing.T) {
	r, err := NewReal("x", -2, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		unit   float64
		native float64
	}{{0, -2}, {0.25, 0}, {0.5, 2}, {1, 6}}
	for _, c := range cases {
		v, err := r.InverseTransform(c.unit, TransformNormalize)
		if err != nil {
			t.Fatalf("inverse %v: %v", c.unit, err)
		}
		if got := v.(float64); math.Abs(got-c.native) > 1e-12 {
			t.Fatalf("inverse %v: got %v want %v", c.unit, got, c.native)
		}
		u, err := r.Transform(c.native, TransformNormalize)
		if err != nil {
			t.Fatalf("transform %v: %v", c.native, err)
		}
		if math.Abs(u-c.unit) > 1e-12 {
			t.Fatalf("transform %v: got %v want %v", c.native, u, c.unit)
		}
	}
}

func TestRealLogUniform(t *testing.T) {
	r, err := NewRealWithPrior("lr", 1e-4, 1, PriorLogUniform, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Base() != 10 {
		t.Fatalf("default base should be 10, got %v", r.Base())
	}
	v, err := r.InverseTransform(0.5, TransformNormalize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.(float64); math.Abs(got-1e-2) > 1e-12 {
		t.Fatalf("log-uniform midpoint: got %v want 0.01", got)
	}
	u, err := r.Transform(1e-3, TransformNormalize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(u-0.25) > 1e-12 {
		t.Fatalf("log-uniform transform: got %v want 0.25", u)
	}

	r2, err := NewRealWithPrior("p", 1, 8, PriorLogUniform, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ = r2.InverseTransform(1.0/3, TransformNormalize)
	if got := v.(float64); math.Abs(got-2) > 1e-9 {
		t.Fatalf("base-2 log-uniform: got %v want 2", got)
	}
}

func TestRealInvalid(t *testing.T) {
	if _, err := NewReal("x", 1, 1); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds for empty interval, got %v", err)
	}
	if _, err := NewReal("x", math.NaN(), 1); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds for NaN, got %v", err)
	}
	if _, err := NewRealWithPrior("x", 0, 1, PriorLogUniform, 10); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds for log-uniform low=0, got %v", err)
	}
	if _, err := NewRealWithPrior("x", 1, 2, PriorLogUniform, 1); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds for base=1, got %v", err)
	}
	r, _ := NewReal("x", 0, 1)
	if _, err := r.InverseTransform(1.5, TransformNormalize); !errors.Is(err, ErrOutOfUnit) {
		t.Fatalf("expected ErrOutOfUnit, got %v", err)
	}
	if _, err := r.Transform("a", TransformNormalize); !errors.Is(err, ErrValueType) {
		t.Fatalf("expected ErrValueType, got %v", err)
	}
}

func TestIntegerInverse(t *testing.T) {
	d, err := NewInteger("n", 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		unit float64
		want int
	}{{0, 1}, {0.1, 1}, {0.2, 2}, {0.5, 3}, {0.99, 5}, {1, 5}}
	for _, c := range cases {
		v, err := d.InverseTransform(c.unit, TransformNormalize)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.(int) != c.want {
			t.Fatalf("inverse %v: got %v want %d", c.unit, v, c.want)
		}
	}
	if v, _ := d.InverseTransform(2.5, TransformIdentity); v.(int) != 2 {
		t.Fatalf("identity should round half to even, got %v", v)
	}
	if _, err := NewInteger("n", 3, 3); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestCategoricalInverse(t *testing.T) {
	d, err := NewCategorical("act", "relu", "tanh", "gelu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		unit float64
		want string
	}{{0, "relu"}, {0.2, "relu"}, {0.3, "tanh"}, {0.5, "tanh"}, {0.8, "gelu"}, {1, "gelu"}}
	for _, c := range cases {
		v, err := d.InverseTransform(c.unit, TransformNormalize)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.(string) != c.want {
			t.Fatalf("inverse %v: got %v want %s", c.unit, v, c.want)
		}
	}
	u, err := d.Transform("gelu", TransformNormalize)
	if err != nil || u != 1 {
		t.Fatalf("transform gelu: got %v %v", u, err)
	}
	if _, err := d.Transform("swish", TransformNormalize); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if b := d.Bounds(); b.Min != 0 || b.Max != 2 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
}

func TestCategoricalInvalid(t *testing.T) {
	if _, err := NewCategorical("c"); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected error for empty categories, got %v", err)
	}
	if _, err := NewCategorical("c", "a", "a"); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected error for duplicate categories, got %v", err)
	}
	if _, err := NewCategorical("c", []int{1}); !errors.Is(err, ErrValueType) {
		t.Fatalf("expected error for uncomparable category, got %v", err)
	}
	single, err := NewCategorical("c", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := single.InverseTransform(0.9, TransformNormalize); v.(int) != 7 {
		t.Fatalf("single category should always map to itself, got %v", v)
	}
}

func TestSpaceTransformerSwitch(t *testing.T) {
	r, _ := NewReal("x", 10, 20)
	sp := mustSpace(t, r)
	if sp.Transformer() != TransformIdentity {
		t.Fatalf("default transformer should be identity")
	}
	if err := sp.SetTransformer(TransformNormalize); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts, err := sp.InverseTransform(mat.NewDense(2, 1, []float64{0, 0.5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts[0][0].(float64) != 10 || pts[1][0].(float64) != 15 {
		t.Fatalf("unexpected points: %v", pts)
	}
	if err := sp.SetTransformer(Transformer(9)); !errors.Is(err, ErrUnknownTransformer) {
		t.Fatalf("expected ErrUnknownTransformer, got %v", err)
	}
	if sp.Transformer() != TransformNormalize {
		t.Fatalf("failed SetTransformer must not change the mode")
	}
}

func TestSpaceRoundTripMixed(t *testing.T) {
	r, _ := NewReal("x", 0, 4)
	n, _ := NewInteger("n", 0, 4)
	c, _ := NewCategorical("c", "a", "b", "c", "d", "e")
	sp := mustSpace(t, r, n, c)
	_ = sp.SetTransformer(TransformNormalize)

	in := []Point{{1.0, 2, "c"}, {4.0, 0, "e"}}
	m, err := sp.Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := sp.InverseTransform(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range in {
		for j := range in[i] {
			if in[i][j] != out[i][j] {
				t.Fatalf("round trip mismatch at [%d][%d]: %v vs %v", i, j, in[i][j], out[i][j])
			}
		}
	}
}

func TestSpaceErrors(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrEmptySpace) {
		t.Fatalf("expected ErrEmptySpace, got %v", err)
	}
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil dimension")
	}
	r, _ := NewReal("x", 0, 1)
	sp := mustSpace(t, r)
	if _, err := sp.InverseTransform(mat.NewDense(1, 2, nil)); err == nil {
		t.Fatalf("expected column mismatch error")
	}
	if _, err := sp.Transform([]Point{{0.1, 0.2}}); err == nil {
		t.Fatalf("expected point length error")
	}
}

func TestParseHelpers(t *testing.T) {
	if k, err := ParseKind("Categorical"); err != nil || k != KindCategorical {
		t.Fatalf("ParseKind: %v %v", k, err)
	}
	if _, err := ParseKind("ordinal"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if p, err := ParsePrior("log-uniform"); err != nil || p != PriorLogUniform {
		t.Fatalf("ParsePrior: %v %v", p, err)
	}
	if _, err := ParsePrior("normal"); !errors.Is(err, ErrUnknownPrior) {
		t.Fatalf("expected ErrUnknownPrior, got %v", err)
	}
	if m, err := ParseTransformer("normalize"); err != nil || m != TransformNormalize {
		t.Fatalf("ParseTransformer: %v %v", m, err)
	}
}
