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
package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zintix-labs/seqlab/errs"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.NewWarn("bad n"), http.StatusBadRequest},
		{errs.Wrap(errs.NewWarn("bad n"), "request"), http.StatusBadRequest},
		{errs.NewFatal("prime supply"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errs.Wrap(context.Canceled, "generate"), http.StatusRequestTimeout},
	}
	for i, c := range cases {
		if got := StatusCode(c.err); got != c.want {
			t.Fatalf("case %d: got %d, want %d", i, got, c.want)
		}
	}
}

func TestErrs(t *testing.T) {
	rec := httptest.NewRecorder()
	Errs(rec, errs.NewWarn("n_samples must be >= 1"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var b Body
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Status != http.StatusBadRequest || b.Level != "warn" {
		t.Fatalf("unexpected body: %+v", b)
	}
	rec = httptest.NewRecorder()
	Errs(rec, nil)
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("nil error should write nothing")
	}
}
