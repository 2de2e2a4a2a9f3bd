package stacktrace

import (
	"fmt"
	"path"
	"runtime"
)

type Frame struct {
	runtime.Frame
}

// String renders "pkg.Func dir/file.go:line", keeping only the last directory of the file path.
func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, shortFile(f.File), f.Line)
}

func shortFile(file string) string {
	dir, name := path.Split(file)
	return path.Join(path.Base(dir), name)
}
