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
package perf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunPProfWritesProfiles(t *testing.T) {
	prev := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = prev })

	for _, mode := range []string{"heap", "allocs"} {
		ran := false
		RunPProf(func() { ran = true }, mode)
		if !ran {
			t.Fatalf("%s: exe not called", mode)
		}
		info, err := os.Stat(filepath.Join(Dir, mode+".pprof"))
		if err != nil || info.Size() == 0 {
			t.Fatalf("%s: profile not written (%v)", mode, err)
		}
	}
}

func TestRunPProfPlain(t *testing.T) {
	prev := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = prev })

	ran := 0
	RunPProf(func() { ran++ }, "")
	RunPProf(func() { ran++ }, "unknown")
	if ran != 2 {
		t.Fatalf("exe ran %d times", ran)
	}
	entries, _ := os.ReadDir(Dir)
	if len(entries) != 0 {
		t.Fatalf("no profile expected, got %d files", len(entries))
	}
}
