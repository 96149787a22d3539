//Derived from pkg/log of vice (github.com/mmp/vice)
//Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
//SPDX: GPL-3.0-only

package log

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

//StackFrame identifies the code that emitted a record
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}

//caller returns the frame of the function that called the Logger method
func caller() slog.Attr {
	var pcs [1]uintptr
	// skip runtime.Callers, caller and the Logger method
	if runtime.Callers(3, pcs[:]) == 0 {
		return slog.String("caller", "?")
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	fn := strings.TrimPrefix(frame.Function, "github.com/gehtsoft-usa/go_jetfuelburn/")
	return slog.String("caller", StackFrame{
		File:     filepath.Base(frame.File),
		Line:     frame.Line,
		Function: fn,
	}.String())
}
