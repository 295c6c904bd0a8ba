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

// CreatePrimes 以只處理奇數的 Eratosthenes 篩法，回傳 [2, threshold] 內所有質數（遞增）。
//
// 奇數 3, 5, 7, ... 對應索引 0, 1, 2, ...（值 = 2*idx+3）；
// 對每個存活的 p，從 p*p 開始以步長 p 劃掉（索引步長亦為 p）。
//
//	CreatePrimes(1)  = []
//	CreatePrimes(2)  = [2]
//	CreatePrimes(10) = [2 3 5 7]
func CreatePrimes(threshold int) []int {
	if threshold < 2 {
		return []int{}
	}
	if threshold == 2 {
		return []int{2}
	}

	half := (threshold - 1) / 2 // 3..threshold 內奇數的個數
	composite := make([]bool, half)
	for idx := 0; ; idx++ {
		p := 2*idx + 3
		if p*p > threshold {
			break
		}
		if composite[idx] {
			continue
		}
		for j := (p*p - 3) / 2; j < half; j += p {
			composite[j] = true
		}
	}

	primes := make([]int, 1, half/2+1)
	primes[0] = 2
	for idx, c := range composite {
		if !c {
			primes = append(primes, 2*idx+3)
		}
	}
	return primes
}
