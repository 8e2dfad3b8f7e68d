package validators

import "testing"

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"0912345678",
		"+886 912 345 678",
		"(02) 2345-6789",
	}
	for _, p := range valid {
		if !IsPhoneValid(p) {
			t.Errorf("IsPhoneValid(%q) = false, want true", p)
		}
	}

	invalid := []string{
		"",
		"12345",
		"0912-ABC-678",
		"12345678901234567890",
	}
	for _, p := range invalid {
		if IsPhoneValid(p) {
			t.Errorf("IsPhoneValid(%q) = true, want false", p)
		}
	}
}
