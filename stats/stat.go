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
// Package stats 提供低差異序列樣本的品質統計（discrepancy、逐維摘要、與亂數的比較實驗）與報表輸出。
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// Table 以終端機表格輸出：基本資訊、逐維摘要、點集。
func (r *Report) Table() string {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Generator":   r.Generator,
		"Samples":     p.Sprintf("%d", r.NSamples),
		"Dimensions":  p.Sprintf("%d", len(r.Dimensions)),
		"Primes":      fmt.Sprint(r.Primes),
		"Skip":        p.Sprintf("%d", r.Skip),
		"Discrepancy": "-",
	}
	if r.Discrepancy != nil {
		basic["Discrepancy"] = p.Sprintf("%.6f", *r.Discrepancy)
	}
	keys := []string{"Generator", "Samples", "Dimensions", "Primes", "Skip", "Discrepancy"}

	var sb strings.Builder
	sb.WriteString(fmtTable("Centered L2", keys, basic))

	header := []string{"dim", "mean", "std", "min", "max"}
	rows := make([][]string, len(r.Summary))
	for i, s := range r.Summary {
		rows[i] = []string{s.Name, p.Sprintf("%.4f", s.Mean), p.Sprintf("%.4f", s.Std), p.Sprintf("%.4f", s.Min), p.Sprintf("%.4f", s.Max)}
	}
	sb.WriteString(fmtGrid(header, rows))

	header = append([]string{"#"}, r.Dimensions...)
	rows = make([][]string, len(r.Points))
	for i, pt := range r.Points {
		row := make([]string, 0, len(pt)+1)
		row = append(row, p.Sprintf("%d", i))
		for _, v := range pt {
			row = append(row, fmtValue(p, v))
		}
		rows[i] = row
	}
	sb.WriteString(fmtGrid(header, rows))
	return sb.String()
}

// Table 以終端機表格輸出比較結果
func (c *Comparison) Table() string {
	p := message.NewPrinter(lang)
	var sb strings.Builder
	sb.WriteString(formatDuration(c.Elapsed, c.Trials))
	title := p.Sprintf("n=%d dim=%d trials=%d", c.N, c.NDim, c.Trials)
	sb.WriteString(fmtTable(title, []string{"Halton", "Random"}, map[string]string{
		"Halton": fmtAggregate(p, c.Halton),
		"Random": fmtAggregate(p, c.Random),
	}))
	return sb.String()
}

// ============================================================
// ** 內部方法 **
// ============================================================

func fmtAggregate(p *message.Printer, a Aggregate) string {
	return p.Sprintf("mean %.5f  std %.5f  [%.5f, %.5f]", a.Mean, a.Std, a.Min, a.Max)
}

func fmtValue(p *message.Printer, v any) string {
	switch x := v.(type) {
	case float64:
		return p.Sprintf("%.6g", x)
	case int:
		return p.Sprintf("%d", x)
	default:
		return fmt.Sprint(x)
	}
}

func formatDuration(d time.Duration, trials int) string {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	tps := float64(trials) / sec
	if sec < 60.0 {
		return p.Sprintf("used: %.2f seconds\ntps : %.1f trials/sec\n", sec, tps)
	}
	s := int(d.Seconds()) % 60
	m := int(d.Minutes()) % 60
	h := int(d.Hours())
	if h == 0 {
		return p.Sprintf("used: %dm %ds\ntps : %.1f trials/sec\n", m, s, tps)
	}
	return p.Sprintf("used: %dh:%dm:%ds\ntps : %.1f trials/sec\n", h, m, s, tps)
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	if titleW > totalInner {
		// 標題過長時加寬值欄
		maxValLen += titleW - totalInner
		totalInner = titleW
	}

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", totalInner) + "+\n"

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		sb.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) + " | " + msg[k] + blank(maxValLen-2-runewidth.StringWidth(msg[k])) + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

// fmtGrid 多欄表格，欄寬以顯示寬度（runewidth）對齊。
func fmtGrid(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for j, h := range header {
		widths[j] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for j := 0; j < len(row) && j < len(widths); j++ {
			if w := runewidth.StringWidth(row[j]); w > widths[j] {
				widths[j] = w
			}
		}
	}

	divider := "+"
	for _, w := range widths {
		divider += strings.Repeat("-", w+2) + "+"
	}
	divider += "\n"

	line := func(cells []string) string {
		s := "|"
		for j, w := range widths {
			c := ""
			if j < len(cells) {
				c = cells[j]
			}
			s += " " + c + blank(w-runewidth.StringWidth(c)) + " |"
		}
		return s + "\n"
	}

	var sb strings.Builder
	sb.WriteString(divider)
	sb.WriteString(line(header))
	sb.WriteString(divider)
	for _, row := range rows {
		sb.WriteString(line(row))
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
