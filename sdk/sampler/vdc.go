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

package sampler

import "fmt"

// VanDerCorput 產生 Van der Corput 低差異序列。
//
// 對每個索引 i，取 n = i+1（1-based 位置），把 n 的 base 進位表示反轉到小數部分：
//
//	n = d0 + d1*b + d2*b^2 + ...  →  d0/b + d1/b^2 + d2/b^3 + ...
//
// 以 base 2 為例，索引 0..7 對應 0.5, 0.25, 0.75, 0.125, 0.625, 0.375, 0.875, 0.0625。
//
// 每個索引各自迭代到剩餘值為 0 為止，不同索引的迭代次數可以不同。
// 輸出落在 [0,1)，相異索引得到相異值。
//
// base <= 1 或出現負索引時 panic（屬於呼叫端的程式錯誤）。
func VanDerCorput[T Integers](idx []T, base int) []float64 {
	out := make([]float64, len(idx))
	VanDerCorputInto(out, idx, base)
	return out
}

// VanDerCorputInto 與 VanDerCorput 相同，但寫入呼叫端提供的 dst（長度需 >= len(idx)）。
func VanDerCorputInto[T Integers](dst []float64, idx []T, base int) {
	if base <= 1 {
		panic(fmt.Sprintf("van der corput: number base must be > 1, got %d", base))
	}
	if len(dst) < len(idx) {
		panic(fmt.Sprintf("van der corput: dst length %d < index length %d", len(dst), len(idx)))
	}
	b := uint64(base)
	for k, i := range idx {
		if i < 0 {
			panic(fmt.Sprintf("van der corput: negative index %d at position %d", i, k))
		}
		dst[k] = radicalInverse(uint64(i)+1, b)
	}
}

// radicalInverse 把 n 的 b 進位數字反轉到小數部分。
func radicalInverse(n, b uint64) float64 {
	fb := float64(b)
	denom := fb
	out := 0.0
	for n > 0 {
		out += float64(n%b) / denom
		n /= b
		denom *= fb
	}
	return out
}
