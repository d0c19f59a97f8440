package scan

import "testing"

func TestScannerNew(t *testing.T) {
	s := New([]byte("abc"))
	if s.Position() != 0 {
		t.Errorf("Position() = %d, want 0", s.Position())
	}
	if string(s.Remaining()) != "abc" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), "abc")
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestScannerBumpBy(t *testing.T) {
	s := New([]byte("abcdef"))
	s.BumpBy(2)
	if string(s.Remaining()) != "cdef" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), "cdef")
	}
	s.BumpBy(4)
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if s.Position() != 6 {
		t.Errorf("Position() = %d, want 6", s.Position())
	}
}

func TestScannerJumpTo(t *testing.T) {
	s := New([]byte("abcdef"))
	// forward jump, as used to skip past a peeked group
	s.JumpTo(4)
	if string(s.Remaining()) != "ef" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), "ef")
	}
	// backward jump, as used to backtrack
	s.JumpTo(1)
	if string(s.Remaining()) != "bcdef" {
		t.Errorf("Remaining() = %q, want %q", s.Remaining(), "bcdef")
	}
	s.JumpTo(6)
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestScannerRewind(t *testing.T) {
	s := New([]byte("abcd"))
	s.BumpBy(3)
	s.Rewind(2)
	if s.Position() != 1 {
		t.Errorf("Position() = %d, want 1", s.Position())
	}
}

func TestScannerBoundsPanic(t *testing.T) {
	tests := []struct {
		name string
		run  func(*Scanner[byte])
	}{
		{"bump past end", func(s *Scanner[byte]) { s.BumpBy(4) }},
		{"bump negative", func(s *Scanner[byte]) { s.BumpBy(-1) }},
		{"jump past end", func(s *Scanner[byte]) { s.JumpTo(4) }},
		{"jump negative", func(s *Scanner[byte]) { s.JumpTo(-1) }},
		{"rewind before start", func(s *Scanner[byte]) { s.Rewind(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.run(New([]byte("abc")))
		})
	}
}

func TestScannerZeroCopy(t *testing.T) {
	data := []byte("abc")
	s := New(data)
	view := s.Remaining()
	data[0] = 'x'
	if view[0] != 'x' {
		t.Error("Remaining() returned a copy, want a view into the input")
	}
}
