package greeter

import (
	"errors"
	"strings"
	"testing"
)

func TestGreetWithoutInput(t *testing.T) {
	got, err := Greet(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, napi-rs!" {
		t.Fatalf("expected 'Hello, napi-rs!', got %q", got)
	}
}

func TestGreetWithString(t *testing.T) {
	got, err := Greet("rusty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, rusty!" {
		t.Fatalf("expected 'Hello, rusty!', got %q", got)
	}
}

func TestGreetEmptyStringIsNotDefaulted(t *testing.T) {
	got, err := Greet("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, !" {
		t.Fatalf("expected 'Hello, !', got %q", got)
	}
}

func TestGreetStringPointer(t *testing.T) {
	name := "pointer"
	got, err := Greet(&name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, pointer!" {
		t.Fatalf("expected 'Hello, pointer!', got %q", got)
	}

	var missing *string
	got, err = Greet(missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Default() {
		t.Fatalf("expected default greeting for nil pointer, got %q", got)
	}
}

func TestGreetKeepsInputVerbatim(t *testing.T) {
	inputs := []string{" spaced ", "multi\nline", "ünïcödé", "{name}", "100%"}
	for _, in := range inputs {
		got, err := Greet(in)
		if err != nil {
			t.Fatalf("Greet(%q) unexpected error: %v", in, err)
		}
		if want := "Hello, " + in + "!"; got != want {
			t.Fatalf("Greet(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGreetRejectsNonString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		kind  string
	}{
		{"int", 4, "number"},
		{"float", 4.5, "number"},
		{"uint64", uint64(4), "number"},
		{"bool", true, "boolean"},
		{"slice", []any{"a"}, "array"},
		{"map", map[string]any{"name": "x"}, "object"},
		{"bytes", []byte("rusty"), "bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Greet(tt.input)
			if !errors.Is(err, ErrInvalidArgumentType) {
				t.Fatalf("expected ErrInvalidArgumentType, got %v", err)
			}
			if got != "" {
				t.Fatalf("expected empty result on error, got %q", got)
			}
			if !strings.Contains(err.Error(), "got "+tt.kind) {
				t.Fatalf("expected error to mention kind %q, got %q", tt.kind, err.Error())
			}
		})
	}
}

func TestGreetIsIdempotent(t *testing.T) {
	for range 3 {
		got, err := Greet("again")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Hello, again!" {
			t.Fatalf("expected stable output, got %q", got)
		}
	}
}

func TestKindOf(t *testing.T) {
	var nilPtr *int
	n := 7
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{nilPtr, "null"},
		{&n, "number"},
		{"s", "string"},
		{int8(1), "number"},
		{float32(1), "number"},
		{false, "boolean"},
		{[2]int{1, 2}, "array"},
		{struct{}{}, "object"},
		{func() {}, "function"},
	}
	for _, tt := range tests {
		if got := KindOf(tt.input); got != tt.want {
			t.Fatalf("KindOf(%#v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
