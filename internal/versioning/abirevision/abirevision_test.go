package abirevision

import "testing"

func TestFormat(t *testing.T) {
	if s := Format(0x201665C5B012BA43); s != "0x201665C5B012BA43" {
		t.Errorf("unexpected format: want: 0x201665C5B012BA43 got: %s", s)
	}
	// Short values are padded to the full 64 bits.
	if s := Format(0xDEADBEEF); s != "0x00000000DEADBEEF" {
		t.Errorf("unexpected format: want: 0x00000000DEADBEEF got: %s", s)
	}
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rev, err := Parse("0x201665C5B012BA43")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if rev != 0x201665C5B012BA43 {
			t.Errorf("unexpected revision: want: %X got: %X", uint64(0x201665C5B012BA43), rev)
		}
	})
	t.Run("invalid-no-prefix", func(t *testing.T) {
		if _, err := Parse("201665C5B012BA43"); err == nil {
			t.Error("unexpected behavior: no error")
		}
	})
	t.Run("invalid-not-hex", func(t *testing.T) {
		if _, err := Parse("0xZZZZ"); err == nil {
			t.Error("unexpected behavior: no error")
		}
	})
}

func TestFixed(t *testing.T) {
	generate := Fixed(42)
	for i := 0; i < 3; i++ {
		rev, err := generate()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if rev != 42 {
			t.Errorf("unexpected revision: want: 42 got: %d", rev)
		}
	}
}

func TestRandomRoundTrips(t *testing.T) {
	rev, err := Random()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, err := Parse(Format(rev))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != rev {
		t.Errorf("round trip mismatch: want: %X got: %X", rev, parsed)
	}
}
