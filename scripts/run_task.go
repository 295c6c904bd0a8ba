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
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// lineFilter 逐行處理 go 指令的輸出；nil 代表直接轉接 stdout/stderr。
type lineFilter func(line string)

// okFailOnly 等同 grep -E '^(ok|FAIL)'，另外保留編譯失敗的訊息。
func okFailOnly(line string) {
	switch {
	case strings.HasPrefix(line, "ok"):
		PrintGreen(line)
	case strings.HasPrefix(line, "FAIL"):
		PrintRed(line)
	case strings.Contains(line, "build failed"), strings.Contains(line, "setup failed"):
		PrintRed(line)
	}
}

// dropNoTestFiles 等同 grep -v '\[no test files\]'，並為 ok / FAIL 上色。
func dropNoTestFiles(line string) {
	switch {
	case strings.Contains(line, "[no test files]"):
	case strings.HasPrefix(line, "ok"):
		PrintGreen(line)
	case strings.HasPrefix(line, "FAIL"):
		PrintRed(line)
	default:
		fmt.Println(line)
	}
}

func (t task) run() error {
	PrintGreen(t.title)

	if t.clean {
		clean := exec.Command("go", "clean", "-testcache")
		clean.Stdout, clean.Stderr = os.Stdout, os.Stderr
		if err := clean.Run(); err != nil {
			return fmt.Errorf("go clean -testcache: %w", err)
		}
	}

	cmd := exec.Command("go", t.args...)
	cmd.Stdin = os.Stdin
	if t.filter == nil {
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		return cmd.Run()
	}

	// 合併 stdout / stderr（2>&1），編譯錯誤通常在 stderr
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return err
	}
	sc := bufio.NewScanner(pipe)
	for sc.Scan() {
		t.filter(sc.Text())
	}
	if err := sc.Err(); err != nil {
		PrintRed(fmt.Sprintf("scanner error: %v", err))
	}
	return cmd.Wait()
}
