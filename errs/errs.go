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

// Package errs 定義 seqlab 統一使用的錯誤型別與分級。
//
// 分級規則：
//   - Warn  : 呼叫端輸入問題（樣本數、維度設定、skip 範圍…），修正輸入即可重試。
//   - Fatal : 不變量被破壞或底層依賴失敗，代表程式邏輯或環境問題。
//   - Log   : 僅供記錄，不影響結果。
package errs

import (
	"errors"
	"fmt"
)

// ErrLevel : Error 分級，使最上層理解問題嚴重程度
type ErrLevel uint8

const (
	None ErrLevel = iota
	Fatal
	Warn
	Log
)

var errLvMap = map[ErrLevel]string{
	None:  "",
	Fatal: "fatal",
	Warn:  "warn",
	Log:   "log",
}

func (lv ErrLevel) String() string {
	if str, ok := errLvMap[lv]; ok {
		return str
	}
	return ""
}

// E 是統一的錯誤型別。
// Message 為主訊息；Extra 為呼叫端追加的上下文；Cause 串接下層錯誤。
type E struct {
	Message string
	Extra   string
	Cause   error
	ErrLv   ErrLevel
}

// Error 實作 error 介面。
func (e *E) Error() string {
	base := fmt.Sprintf("errlv=%s %s", e.ErrLv, e.Message)
	if e.Extra != "" {
		base += " | extra: " + e.Extra
	}
	if e.Cause != nil {
		base += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return base
}

// Unwrap 讓 errors.Is / errors.As 能夠向下展開。
func (e *E) Unwrap() error { return e.Cause }

func New(errLv ErrLevel, msg string) *E {
	return &E{Message: msg, ErrLv: errLv}
}

func NewFatal(msg string) *E {
	return &E{Message: msg, ErrLv: Fatal}
}

func NewWarn(msg string) *E {
	return &E{Message: msg, ErrLv: Warn}
}

func NewLog(msg string) *E {
	return &E{Message: msg, ErrLv: Log}
}

func Fatalf(format string, a ...any) *E {
	return NewFatal(fmt.Sprintf(format, a...))
}

func Warnf(format string, a ...any) *E {
	return NewWarn(fmt.Sprintf(format, a...))
}

// Wrap 以 msg 包裝 cause。
//
// ErrLevel 規則：
//   - cause 已經是 *E（含哨兵錯誤）：沿用其 ErrLv。
//   - 其他錯誤（標準庫、三方依賴）：一律視為 Fatal。
func Wrap(cause error, msg string) *E {
	r := New(LevelOf(cause), msg)
	r.Cause = cause
	return r
}

// Wrapf 與 Wrap 相同，訊息可格式化。
func Wrapf(cause error, format string, a ...any) *E {
	return Wrap(cause, fmt.Sprintf(format, a...))
}

// WrapWithExtra 與 Wrap 相同，但可附加上下文字串（不影響主訊息）。
func WrapWithExtra(cause error, msg string, extra string) *E {
	r := Wrap(cause, msg)
	r.Extra = extra
	return r
}

// LevelOf 回傳錯誤鏈上第一個 *E 的等級；nil 回傳 None，非本包錯誤回傳 Fatal。
func LevelOf(err error) ErrLevel {
	if err == nil {
		return None
	}
	var e *E
	if errors.As(err, &e) {
		return e.ErrLv
	}
	return Fatal
}

func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return e, false
}
