package lexer

import (
	"fmt"
	"runtime"
	"strings"
)

// callStack holds the program counters of the function that created an error and its callers.
type callStack []uintptr

// captureCallStack records the current call stack. skip is the number of frames above captureCallStack to leave out,
// e.g. 1 leaves out an error constructor so the function using the constructor becomes the first frame.
func captureCallStack(skip int) callStack {
	const depth = 16
	var pcs [depth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	return pcs[:n]
}

// String prints one "function\n\tfile:line" entry per frame. Frames of the Go runtime and the testing package are
// left out since they never help with finding the offending input.
func (s callStack) String() string {
	var sb strings.Builder

	frames := runtime.CallersFrames(s)
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") && !strings.HasPrefix(frame.Function, "testing.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}

	return sb.String()
}

// IllegalTokenError reports a lexeme that could not be classified. The lexer itself never creates this error, it
// hands out Illegal tokens instead. Callers wanting to reject such input use CheckIllegal.
type IllegalTokenError struct {
	Message  string `json:"message"`
	Position int    `json:"position"`
	Lexeme   string `json:"lexeme"`
	stack    callStack
}

func NewIllegalTokenError(token ScannedToken) *IllegalTokenError {
	return &IllegalTokenError{
		Message:  fmt.Sprintf("Lexing error: Illegal token '%s' at position %d.", token.Lexeme, token.Position),
		Position: token.Position,
		Lexeme:   token.Lexeme,
		stack:    captureCallStack(1),
	}
}

func (e *IllegalTokenError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\n%s", e.Error(), e.stack)
			return
		}
		fmt.Fprintf(s, "%s", e.Error())
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *IllegalTokenError) Error() string {
	return e.Message
}

// CheckIllegal returns an *IllegalTokenError for the first Illegal token or nil if there is none.
func CheckIllegal(tokens []ScannedToken) error {
	for _, token := range tokens {
		if token.Kind() == TokenKindIllegal {
			return NewIllegalTokenError(token)
		}
	}
	return nil
}
