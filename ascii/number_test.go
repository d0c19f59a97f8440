package ascii

import (
	"errors"
	"testing"

	"github.com/dhamidi/taz/scan"
)

func TestNumber(t *testing.T) {
	s := scan.New([]byte("1234 rest"))
	got, err := Number[int](s)
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	if got != 1234 {
		t.Errorf("Number() = %d, want 1234", got)
	}
	if string(s.Remaining()) != " rest" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), " rest")
	}
}

func TestNumberAbsent(t *testing.T) {
	s := scan.New([]byte("abc"))
	if _, err := Number[int](s); !errors.Is(err, scan.ErrUnexpectedToken) {
		t.Errorf("Number() error = %v, want %v", err, scan.ErrUnexpectedToken)
	}
	if s.Position() != 0 {
		t.Errorf("Position() = %d, want 0", s.Position())
	}
}

func TestNumberOverflow(t *testing.T) {
	s := scan.New([]byte("99999999999999999999999999"))
	if _, err := Number[int64](s); !errors.Is(err, scan.ErrBadValue) {
		t.Errorf("Number() error = %v, want %v", err, scan.ErrBadValue)
	}
}

func TestNumberTargetTypeRange(t *testing.T) {
	s := scan.New([]byte("300"))
	if got, err := Number[int8](s); !errors.Is(err, scan.ErrBadValue) {
		t.Errorf("Number[int8]() = %d, %v, want %v", got, err, scan.ErrBadValue)
	}

	s = scan.New([]byte("70000"))
	if got, err := Number[uint16](s); !errors.Is(err, scan.ErrBadValue) {
		t.Errorf("Number[uint16]() = %d, %v, want %v", got, err, scan.ErrBadValue)
	}

	s = scan.New([]byte("127"))
	got8, err := Number[int8](s)
	if err != nil {
		t.Fatalf("Number[int8]() error = %v", err)
	}
	if got8 != 127 {
		t.Errorf("Number[int8]() = %d, want 127", got8)
	}

	s = scan.New([]byte("18446744073709551615"))
	got64, err := Number[uint64](s)
	if err != nil {
		t.Fatalf("Number[uint64]() error = %v", err)
	}
	if got64 != 18446744073709551615 {
		t.Errorf("Number[uint64]() = %d, want 18446744073709551615", got64)
	}
}

func TestText(t *testing.T) {
	s := scan.New([]byte("hello world("))
	got, err := Text(s)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("Text() = %q, want %q", got, "hello world")
	}
	if string(s.Remaining()) != "(" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), "(")
	}
}

func TestSpaces(t *testing.T) {
	s := scan.New([]byte("   x"))
	n, err := Spaces(s)
	if err != nil {
		t.Fatalf("Spaces() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Spaces() = %d, want 3", n)
	}
	if string(s.Remaining()) != "x" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), "x")
	}

	s = scan.New([]byte("x"))
	if _, err := Spaces(s); !errors.Is(err, scan.ErrUnexpectedToken) {
		t.Errorf("Spaces() error = %v, want %v", err, scan.ErrUnexpectedToken)
	}
}

func TestOptionalSpaces(t *testing.T) {
	s := scan.New([]byte("x"))
	n, err := OptionalSpaces(s)
	if err != nil {
		t.Fatalf("OptionalSpaces() error = %v", err)
	}
	if n != 0 {
		t.Errorf("OptionalSpaces() = %d, want 0", n)
	}
	if s.Position() != 0 {
		t.Errorf("Position() = %d, want 0", s.Position())
	}

	s = scan.New([]byte("  "))
	if _, err := OptionalSpaces(s); err != nil {
		t.Fatalf("OptionalSpaces() error = %v", err)
	}
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}
