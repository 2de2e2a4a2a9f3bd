package stacktrace

import (
	"runtime"
	"strings"
)

const maxDepth = 64

type StackTrace struct {
	Frames []Frame
}

// ParsePCS resolves program counters, as returned by [runtime.Callers], into frames.
func ParsePCS(pcs []uintptr) *StackTrace {
	st := &StackTrace{Frames: make([]Frame, 0, len(pcs))}
	if len(pcs) == 0 {
		return st
	}
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		st.Frames = append(st.Frames, Frame{Frame: frame})
		if !more {
			break
		}
	}
	return st
}

// Capture returns the stack of the calling goroutine. skip is the number of frames
// to skip above the caller of Capture.
func Capture(skip int) *StackTrace {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	return ParsePCS(pcs[:n])
}

// Lines renders one frame per line, innermost first. Runtime frames at the bottom
// of the stack are dropped.
func (s *StackTrace) Lines() []string {
	end := len(s.Frames)
	for end > 0 && strings.HasPrefix(s.Frames[end-1].Function, "runtime.") {
		end--
	}
	lines := make([]string, 0, end)
	for _, frame := range s.Frames[:end] {
		lines = append(lines, frame.String())
	}
	return lines
}

func (s *StackTrace) String() string {
	return strings.Join(s.Lines(), "\n")
}
