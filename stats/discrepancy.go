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
package stats

import (
	"math"

	"github.com/zintix-labs/seqlab/errs"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptySample 沒有任何樣本或維度可供計算。
var ErrEmptySample = errs.NewWarn("empty sample")

// CenteredL2 計算單位尺度樣本（列 = 樣本、欄 = 維度）的 centered L2 discrepancy。
//
// 值越小代表點集在 [0,1]^d 中越均勻。所有值必須落在 [0,1]。
// 計算量為 O(n^2 * d)。
func CenteredL2(unit mat.Matrix) (float64, error) {
	if unit == nil {
		return 0, ErrEmptySample
	}
	n, d := unit.Dims()
	if n == 0 || d == 0 {
		return 0, ErrEmptySample
	}
	// z = |x - 0.5|，先算好避免雙重迴圈內重複計算
	z := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			x := unit.At(i, k)
			if math.IsNaN(x) || x < 0 || x > 1 {
				return 0, errs.Warnf("discrepancy: value %v at (%d, %d) is outside [0, 1]", x, i, k)
			}
			z.Set(i, k, math.Abs(x-0.5))
		}
	}

	term1 := math.Pow(13.0/12.0, float64(d))

	var sum2 float64
	for i := 0; i < n; i++ {
		prod := 1.0
		for k := 0; k < d; k++ {
			zk := z.At(i, k)
			prod *= 1 + 0.5*zk - 0.5*zk*zk
		}
		sum2 += prod
	}

	var sum3 float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := 1.0
			for k := 0; k < d; k++ {
				prod *= 1 + 0.5*z.At(i, k) + 0.5*z.At(j, k) - 0.5*math.Abs(unit.At(i, k)-unit.At(j, k))
			}
			sum3 += prod
		}
	}

	nf := float64(n)
	cd2 := term1 - 2*sum2/nf + sum3/(nf*nf)
	// 浮點誤差可能讓極小值略低於 0
	return math.Sqrt(math.Max(cd2, 0)), nil
}
