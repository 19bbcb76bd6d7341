package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestToolkitErrorString(t *testing.T) {
	err := &ToolkitError{
		Op:   "test.operation",
		Kind: KindDispatch,
		Err:  fmt.Errorf("no focused node"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "[dispatch]") {
		t.Errorf("error string %q should contain kind", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindBuild, "build"},
		{KindDispatch, "dispatch"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMissingContextErrorNamesComponent(t *testing.T) {
	err := &MissingContextError{Component: "widgets.RadioOption", Scope: "widgets.RadioGroup"}
	got := err.Error()
	if !strings.Contains(got, "widgets.RadioOption") {
		t.Errorf("error %q should name the offending component", got)
	}
	if !strings.Contains(got, "widgets.RadioGroup") {
		t.Errorf("error %q should name the missing scope", got)
	}
	if err.Kind() != KindConfig {
		t.Errorf("Kind() = %v, want KindConfig", err.Kind())
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "host.Document.DispatchKey",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in host.Document.DispatchKey: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *ToolkitError
	handler := &testHandler{
		onError: func(err *ToolkitError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&ToolkitError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  fmt.Errorf("bad configuration"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{
		Widget:    "widgets.RadioOption",
		Element:   "*core.StatefulElement",
		Recovered: "nil pointer dereference",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in widgets.RadioOption.Build(): nil pointer dereference"
	if got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	err2 := &BuildError{
		Widget:  "widgets.RadioOption",
		Element: "*core.StatefulElement",
		Err:     fmt.Errorf("boom"),
	}
	if !strings.Contains(err2.Error(), "error in widgets.RadioOption.Build()") {
		t.Errorf("BuildError.Error() = %q, should contain 'error in'", err2.Error())
	}

	err3 := &BuildError{
		Widget:  "widgets.RadioOption",
		Element: "*core.StatefulElement",
	}
	want3 := "unknown error in widgets.RadioOption.Build()"
	if err3.Error() != want3 {
		t.Errorf("BuildError.Error() = %q, want %q", err3.Error(), want3)
	}
}

func TestReportBuildError(t *testing.T) {
	var capturedErr *BuildError
	handler := &testHandler{
		onBuildError: func(err *BuildError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportBuildError(&BuildError{
		Widget:    "widgets.GroupLabel",
		Element:   "*core.StatefulElement",
		Recovered: "test panic",
	})

	if capturedErr == nil {
		t.Fatal("expected build error to be captured")
	}
	if capturedErr.Widget != "widgets.GroupLabel" {
		t.Errorf("Widget = %q, want %q", capturedErr.Widget, "widgets.GroupLabel")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

type testHandler struct {
	onError      func(*ToolkitError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *ToolkitError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
