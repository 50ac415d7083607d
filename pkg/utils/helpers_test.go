package utils

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string passes through", "hello", "hello"},
		{"nil becomes empty", nil, ""},
		{"number formatted", 42.0, "42"},
		{"bool formatted", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimmedString(t *testing.T) {
	if got := TrimmedString("  Apple  "); got != "Apple" {
		t.Errorf("TrimmedString = %q, want Apple", got)
	}
	if got := TrimmedString(nil); got != "" {
		t.Errorf("TrimmedString(nil) = %q, want empty", got)
	}
}

func TestFloat(t *testing.T) {
	if f, ok := Float(4.5); !ok || f != 4.5 {
		t.Errorf("Float(4.5) = %v, %v", f, ok)
	}
	if f, ok := Float(7); !ok || f != 7 {
		t.Errorf("Float(7) = %v, %v", f, ok)
	}
	if _, ok := Float("4.5"); ok {
		t.Error("Float should reject strings")
	}
	if _, ok := Float(nil); ok {
		t.Error("Float should reject nil")
	}
}

func TestInt(t *testing.T) {
	if n, ok := Int(float64(12)); !ok || n != 12 {
		t.Errorf("Int(12.0) = %v, %v", n, ok)
	}
	if _, ok := Int("12"); ok {
		t.Error("Int should reject strings")
	}
}

func TestBool(t *testing.T) {
	if !Bool(true) {
		t.Error("Bool(true) = false")
	}
	if Bool("yes") || Bool(nil) || Bool(1) {
		t.Error("Bool should be false for non-bool values")
	}
}
