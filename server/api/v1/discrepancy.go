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
package v1

import (
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/stats"
	"gonum.org/v1/gonum/mat"
)

type discrepancyRequest struct {
	Names  []string    `json:"names"`
	Points [][]float64 `json:"points"`
}

type discrepancyResponse struct {
	N           int                `json:"n"`
	NDim        int                `json:"n_dim"`
	Discrepancy float64            `json:"discrepancy"`
	Summary     []stats.DimSummary `json:"summary"`
}

// Discrepancy POST /v1/discrepancy
//
// Body: {"points": [[...], ...]}，每列一個單位尺度的點，所有值需落在 [0,1]。
func (h *Handler) Discrepancy(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	req := new(discrepancyRequest)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		h.fail(w, "decode request failed", &errs.E{Message: "json decode failed", Cause: err, ErrLv: errs.Warn})
		return
	}
	unit, err := toDense(req.Points)
	if err != nil {
		h.fail(w, "invalid points", err)
		return
	}
	if n, _ := unit.Dims(); n > h.cfg.MaxDiscrepancy {
		h.fail(w, "sample limit", errs.Warnf("%d points exceeds discrepancy limit %d", n, h.cfg.MaxDiscrepancy))
		return
	}
	cd, err := stats.CenteredL2(unit)
	if err != nil {
		h.fail(w, "discrepancy failed", err)
		return
	}
	n, d := unit.Dims()
	h.writeJSON(w, discrepancyResponse{
		N:           n,
		NDim:        d,
		Discrepancy: cd,
		Summary:     stats.Summarize(req.Names, unit),
	})
}

// toDense 把不規則輸入轉為 n x d 矩陣，列長不一致視為輸入錯誤。
func toDense(points [][]float64) (*mat.Dense, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, stats.ErrEmptySample
	}
	d := len(points[0])
	data := make([]float64, 0, len(points)*d)
	for i, p := range points {
		if len(p) != d {
			return nil, errs.Warnf("points[%d] has %d values, want %d", i, len(p), d)
		}
		data = append(data, p...)
	}
	return mat.NewDense(len(points), d, data), nil
}
