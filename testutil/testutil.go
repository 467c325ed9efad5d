package testutil

import (
	"runtime"
	"testing"

	"github.com/rs/zerolog"
)

// ConfigLogging quiets the global logger so test output stays readable.
func ConfigLogging() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

// CallWatcher records calls made against a mock so tests can verify how many
// times each mocked function was hit and with what arguments.
type CallWatcher struct {
	functionCalls map[string][][]interface{}
}

func NewCallWatcher() *CallWatcher {
	return &CallWatcher{functionCalls: make(map[string][][]interface{})}
}

func (w *CallWatcher) GetCalls(funcName string) [][]interface{} {
	for name, calls := range w.functionCalls {
		if shortName(name) == funcName {
			return calls
		}
	}
	return nil
}

func (w *CallWatcher) GetCallCount(funcName string) int {
	return len(w.GetCalls(funcName))
}

func (w *CallWatcher) AddCall(args ...interface{}) {
	pc := make([]uintptr, 15)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()
	funcName := frame.Func.Name()

	calls := w.functionCalls[funcName]
	w.functionCalls[funcName] = append(calls, args)
}

func (w *CallWatcher) VerifyCount(funcName string, want int, t *testing.T) {
	t.Helper()
	if got := w.GetCallCount(funcName); got != want {
		t.Errorf("%s call count got=%d want=%d", funcName, got, want)
	}
}

// shortName trims a fully qualified function name like
// pkg/db/prodrepo.(*MockRepo).SaveProduct down to SaveProduct.
func shortName(qualified string) string {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[i+1:]
		}
	}
	return qualified
}
