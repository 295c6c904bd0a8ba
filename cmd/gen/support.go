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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zintix-labs/seqlab/demo"
	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/server/logger"
	"github.com/zintix-labs/seqlab/spec"
	"github.com/zintix-labs/seqlab/stats"
)

var cfg *config = new(config)

type config struct {
	config     string
	demo       string
	list       bool
	n          int
	seed       int64
	format     string
	compare    int
	compareN   int
	compareDim int
	logMode    string
	pprofmode  string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.StringVar(&cfg.config, "config", "", "generator setting file (.yaml/.yml/.json); empty uses the embedded demo")
	flag.StringVar(&cfg.demo, "demo", demo.DefaultSetting, "embedded demo setting name")
	flag.BoolVar(&cfg.list, "list", false, "list embedded demo settings and exit")
	flag.IntVar(&cfg.n, "n", 0, "override n_samples (0 keeps the setting)")
	flag.Int64Var(&cfg.seed, "seed", -1, "override seed (negative keeps the setting)")
	flag.StringVar(&cfg.format, "format", "table", "output format: table|json|yaml")
	flag.IntVar(&cfg.compare, "compare", 0, "run N halton-vs-random trials instead of generating")
	flag.IntVar(&cfg.compareN, "compare-n", 256, "samples per comparison trial")
	flag.IntVar(&cfg.compareDim, "compare-dim", 2, "dimensions per comparison trial")
	flag.StringVar(&cfg.logMode, "log-mode", "ModeSilence", "log mode: ModeDev|ModeProd|ModeSilence")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()
}

func execute() {
	log := logger.NewDefaultLogger(logger.ParseMode(cfg.logMode, logger.ModeSilence))
	if err := run(os.Stdout, log); err != nil {
		log.Error("gen failed", slog.Any("err", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, log *slog.Logger) error {
	if cfg.list {
		_, err := fmt.Fprintln(w, strings.Join(demo.Names(), "\n"))
		return err
	}
	rd, err := stats.NewRender(cfg.format)
	if err != nil {
		return err
	}

	if cfg.compare > 0 {
		seed := cfg.seed
		if seed < 0 {
			seed = 1
		}
		c, err := stats.Compare(stats.CompareConfig{
			NDim:         cfg.compareDim,
			N:            cfg.compareN,
			Trials:       cfg.compare,
			Seed:         seed,
			ShowProgress: cfg.format == "table",
		})
		if err != nil {
			return err
		}
		return rd.WriteComparison(w, c)
	}

	gs, err := loadSetting()
	if err != nil {
		return err
	}
	if cfg.n < 0 {
		return errs.Warnf("-n must be >= 0, got %d", cfg.n)
	}
	if cfg.n > 0 {
		gs.NSamples = cfg.n
	}
	if cfg.seed >= 0 {
		s := cfg.seed
		gs.Seed = &s
	}
	rep, err := stats.Generate(gs, log, 0)
	if err != nil {
		return err
	}
	return rd.Write(w, rep)
}

// loadSetting 優先讀取 -config 指定的檔案，否則使用內嵌範例。
func loadSetting() (*spec.GeneratorSetting, error) {
	if cfg.config == "" {
		return demo.Setting(cfg.demo)
	}
	dir, name := filepath.Split(cfg.config)
	if dir == "" {
		dir = "."
	}
	return spec.LoadGeneratorSetting(os.DirFS(dir), name)
}
