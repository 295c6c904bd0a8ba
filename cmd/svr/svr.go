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
	"os"
	"path/filepath"

	"github.com/zintix-labs/seqlab/demo"
	"github.com/zintix-labs/seqlab/server"
	"github.com/zintix-labs/seqlab/server/logger"
	"github.com/zintix-labs/seqlab/server/netsvr"
	"github.com/zintix-labs/seqlab/server/svrcfg"
	"github.com/zintix-labs/seqlab/spec"
)

// seqlab HTTP server。預設設定為內嵌範例 hyperparams.yaml，可用 -config 指定檔案。
func main() {
	cfg, addr, err := loadConfigFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	server.RunWithSvr(cfg, netsvr.NewChiServer(addr))
}

type config struct {
	LogMode      string
	Addr         string
	Config       string
	MaxSamples   int
	MaxThreshold int
	MaxDisc      int
}

func loadConfigFromFlags() (*svrcfg.SvrCfg, string, error) {
	cfg := new(config)
	flag.StringVar(&cfg.LogMode, "log-mode", "ModeDev", "log mode: ModeDev|ModeProd|ModeSilence")
	flag.StringVar(&cfg.Addr, "addr", ":5808", "listen address")
	flag.StringVar(&cfg.Config, "config", "", "default generator setting file; empty uses the embedded demo")
	flag.IntVar(&cfg.MaxSamples, "max-samples", 100000, "max n_samples per request")
	flag.IntVar(&cfg.MaxThreshold, "max-threshold", 10000000, "max threshold for /v1/primes")
	flag.IntVar(&cfg.MaxDisc, "max-discrepancy", 10000, "max samples for centered L2 discrepancy")

	flag.Parse()

	log, _ := logger.NewAsync(4096, logger.ParseMode(cfg.LogMode, logger.ModeDev))

	gs, err := cfg.defaults()
	if err != nil {
		return nil, "", err
	}
	sCfg := &svrcfg.SvrCfg{
		Log:            log,
		Defaults:       gs,
		MaxSamples:     cfg.MaxSamples,
		MaxThreshold:   cfg.MaxThreshold,
		MaxDiscrepancy: cfg.MaxDisc,
	}
	return sCfg, cfg.Addr, nil
}

func (cfg *config) defaults() (*spec.GeneratorSetting, error) {
	if cfg.Config == "" {
		return demo.Setting(demo.DefaultSetting)
	}
	dir, name := filepath.Split(cfg.Config)
	if dir == "" {
		dir = "."
	}
	return spec.LoadGeneratorSetting(os.DirFS(dir), name)
}
