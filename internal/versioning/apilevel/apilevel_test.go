package apilevel

import "testing"

func TestLevel(t *testing.T) {
	t.Run("invalid-empty", func(t *testing.T) {
		_, err := From("").Parse()
		if err == nil {
			t.Error("unexpected behavior: no error")
		}
	})
	t.Run("invalid-text", func(t *testing.T) {
		_, err := From("head").Parse()
		if err == nil {
			t.Error("unexpected behavior: no error")
		}
	})
	t.Run("invalid-zero", func(t *testing.T) {
		_, err := From("0").Parse()
		if err == nil {
			t.Error("unexpected behavior: no error")
		}
	})
	t.Run("invalid-negative", func(t *testing.T) {
		_, err := From("-3").Parse()
		if err == nil {
			t.Error("unexpected behavior: no error")
		}
	})
	t.Run("valid", func(t *testing.T) {
		level, err := From("12").Parse()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if level != 12 {
			t.Errorf("unexpected level: want: 12 got: %d", level)
		}
	})
	t.Run("valid-trims-space", func(t *testing.T) {
		level, err := From(" 2\n").Parse()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if level != 2 {
			t.Errorf("unexpected level: want: 2 got: %d", level)
		}
	})
}
