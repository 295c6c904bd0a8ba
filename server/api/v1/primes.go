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
	"net/http"

	"github.com/zintix-labs/seqlab/errs"
	"github.com/zintix-labs/seqlab/sdk/sampler"
)

type primesResponse struct {
	Threshold int   `json:"threshold"`
	Count     int   `json:"count"`
	Primes    []int `json:"primes"`
}

// Primes GET /v1/primes?threshold=N
func (h *Handler) Primes(w http.ResponseWriter, r *http.Request) {
	t, ok, err := queryInt(r, "threshold")
	if err != nil {
		h.fail(w, "parse query failed", err)
		return
	}
	if !ok {
		h.fail(w, "parse query failed", errs.NewWarn("query threshold is required"))
		return
	}
	if t > h.cfg.MaxThreshold {
		h.fail(w, "threshold limit", errs.Warnf("threshold %d exceeds server limit %d", t, h.cfg.MaxThreshold))
		return
	}
	ps := sampler.CreatePrimes(t)
	h.writeJSON(w, primesResponse{Threshold: t, Count: len(ps), Primes: ps})
}
