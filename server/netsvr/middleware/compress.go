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
package middleware

import (
	"bufio"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// CompressConfig 壓縮等級。需在 server 啟動前設定。
type CompressConfig struct {
	GzipLevel int
	ZstdLevel zstd.EncoderLevel
}

var DefaultCompressConfig = CompressConfig{
	GzipLevel: gzip.DefaultCompression,
	ZstdLevel: zstd.SpeedFastest,
}

// encoder 可重設目標並重複使用的壓縮器
type encoder interface {
	io.Writer
	Reset(w io.Writer)
	Close() error
}

// codec 依偏好順序排列：zstd 優先，其次 gzip
type codec struct {
	name string
	pool sync.Pool
	make func(w io.Writer) encoder
}

var codecs = []*codec{
	{
		name: "zstd",
		make: func(w io.Writer) encoder {
			zw, err := zstd.NewWriter(w,
				zstd.WithEncoderLevel(DefaultCompressConfig.ZstdLevel),
				zstd.WithEncoderConcurrency(1),
			)
			if err != nil {
				panic(err)
			}
			return zw
		},
	},
	{
		name: "gzip",
		make: func(w io.Writer) encoder {
			gw, err := gzip.NewWriterLevel(w, DefaultCompressConfig.GzipLevel)
			if err != nil {
				panic(err)
			}
			return gw
		},
	},
}

func (c *codec) get(w io.Writer) encoder {
	if v := c.pool.Get(); v != nil {
		e := v.(encoder)
		e.Reset(w)
		return e
	}
	return c.make(w)
}

func (c *codec) put(e encoder) {
	_ = e.Close()
	c.pool.Put(e)
}

// pickCodec 依 Accept-Encoding 選擇壓縮方式；都不支援時回傳 nil。
func pickCodec(accept string) *codec {
	accept = strings.ToLower(accept)
	for _, c := range codecs {
		if strings.Contains(accept, c.name) {
			return c
		}
	}
	return nil
}

type compressResponseWriter struct {
	http.ResponseWriter
	enc      encoder
	disabled bool // 204 / 304 / 1xx 不得帶 body，動態取消壓縮
}

func (cw *compressResponseWriter) Write(b []byte) (int, error) {
	if cw.disabled {
		return cw.ResponseWriter.Write(b)
	}
	// 壓縮後長度未知
	cw.Header().Del("Content-Length")
	if cw.Header().Get("Content-Type") == "" {
		cw.Header().Set("Content-Type", http.DetectContentType(b))
	}
	return cw.enc.Write(b)
}

func (cw *compressResponseWriter) WriteHeader(code int) {
	cw.Header().Del("Content-Length")
	if (code >= 100 && code < 200) || code == http.StatusNoContent || code == http.StatusNotModified {
		cw.disabled = true
		cw.Header().Del("Content-Encoding")
		cw.Header().Del("Vary")
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *compressResponseWriter) Flush() {
	if !cw.disabled {
		if f, ok := cw.enc.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
	}
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (cw *compressResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := cw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("underlying response writer does not support Hijacker")
	}
	return hj.Hijack()
}

// Compression 依 Accept-Encoding 以 zstd 或 gzip 壓縮回應。
// HEAD、WebSocket upgrade 與已經帶 Content-Encoding 的回應不處理。
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || isUpgrade(r) || w.Header().Get("Content-Encoding") != "" {
			next.ServeHTTP(w, r)
			return
		}
		c := pickCodec(r.Header.Get("Accept-Encoding"))
		if c == nil {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", c.name)
		w.Header().Add("Vary", "Accept-Encoding")

		enc := c.get(w)
		cw := &compressResponseWriter{ResponseWriter: w, enc: enc}
		defer func() {
			// 取消壓縮時 Close 產生的 footer 不能寫進 204/304 回應
			if cw.disabled {
				enc.Reset(io.Discard)
			}
			c.put(enc)
		}()

		next.ServeHTTP(cw, r)
	})
}

func isUpgrade(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Connection")), "upgrade") ||
		r.Header.Get("Upgrade") != ""
}
