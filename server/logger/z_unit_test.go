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
package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := map[string]LogMode{
		"ModeDev":     ModeDev,
		"prod":        ModeProd,
		"ModeSilence": ModeSilence,
		" SILENCE ":   ModeSilence,
	}
	for in, want := range cases {
		if got := ParseMode(in, ModeDev); got != want {
			t.Fatalf("%q: got %v, want %v", in, got, want)
		}
	}
	if got := ParseMode("verbose", ModeProd); got != ModeProd {
		t.Fatalf("unknown mode should fall back, got %v", got)
	}
}

func TestAsyncHandlerWritesAndDrains(t *testing.T) {
	var buf bytes.Buffer
	ah := NewAsyncHandler(slog.NewTextHandler(&buf, nil), 64)
	log := slog.New(ah).With(slog.String("component", "halton"))
	for i := 0; i < 10; i++ {
		log.Info("resolved", slog.Int("i", i))
	}
	ah.Close()
	out := buf.String()
	if strings.Count(out, "resolved") != 10 || !strings.Contains(out, "component=halton") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	log.Info("after close")
	if ah.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", ah.Dropped())
	}
	ah.Close()
}

func TestNilAsyncHandler(t *testing.T) {
	var ah *AsyncHandler
	if ah.Ready() || ah.Dropped() != 0 {
		t.Fatalf("nil handler should not be ready")
	}
	ah.Close()
}
