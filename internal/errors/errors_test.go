package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCreation(t *testing.T) {
	err := E(Op("client.Fetch"), KindNetwork, "request failed")

	if err.Op != "client.Fetch" {
		t.Errorf("expected Op 'client.Fetch', got %q", err.Op)
	}
	if err.Kind != KindNetwork {
		t.Errorf("expected Kind KindNetwork, got %v", err.Kind)
	}
	if err.Msg != "request failed" {
		t.Errorf("expected Msg 'request failed', got %q", err.Msg)
	}
}

func TestErrorWithWrappedError(t *testing.T) {
	underlying := fmt.Errorf("connection refused")
	err := E(Op("client.Fetch"), KindNetwork, underlying, "failed to fetch")

	if err.Err != underlying {
		t.Error("expected underlying error to be set")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "client.Fetch") {
		t.Errorf("error string should contain operation, got %q", errStr)
	}
	if !strings.Contains(errStr, "failed to fetch") {
		t.Errorf("error string should contain message, got %q", errStr)
	}
	if !strings.Contains(errStr, "connection refused") {
		t.Errorf("error string should contain underlying error, got %q", errStr)
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := fmt.Errorf("root cause")
	err := E(Op("test"), underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should reach the underlying error")
	}
	if err.Unwrap() != underlying {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestErrorStringFormats(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "op only",
			err:      &Error{Op: "encode.Decode"},
			expected: "encode.Decode: ",
		},
		{
			name:     "op and message",
			err:      &Error{Op: "encode.Decode", Msg: "missing field"},
			expected: "encode.Decode: missing field",
		},
		{
			name:     "message and underlying",
			err:      &Error{Msg: "bad document", Err: fmt.Errorf("eof")},
			expected: "bad document: eof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap("op", nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if WrapMsg("op", "msg", nil) != nil {
		t.Error("WrapMsg(nil) should return nil")
	}
}

func TestIsKind(t *testing.T) {
	err := E(Op("catalog.Open"), KindDatabase, "open failed")

	if !IsKind(err, KindDatabase) {
		t.Error("expected IsKind to match KindDatabase")
	}
	if IsKind(err, KindNetwork) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(fmt.Errorf("plain"), KindDatabase) {
		t.Error("IsKind should be false for plain errors")
	}
}

func TestIsKindTraversesWrapping(t *testing.T) {
	inner := E(Op("encode.decodeReplicate"), KindSchema, "missing field")
	outer := Wrap("encode.newRawFile", inner)

	if !IsKind(outer, KindSchema) {
		t.Error("IsKind should find the kind of a wrapped error")
	}
	if GetKind(outer) != KindSchema {
		t.Errorf("GetKind should unwrap to KindSchema, got %v", GetKind(outer))
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(E(KindSchema)); got != KindSchema {
		t.Errorf("expected KindSchema, got %v", got)
	}
	if got := GetKind(fmt.Errorf("plain")); got != KindUnknown {
		t.Errorf("expected KindUnknown for plain error, got %v", got)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindUnknown:    "unknown",
		KindConfig:     "config",
		KindNetwork:    "network",
		KindParse:      "parse",
		KindSchema:     "schema",
		KindValidation: "validation",
		KindDatabase:   "database",
		KindIO:         "io",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
