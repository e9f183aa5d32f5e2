package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "users", false},
		{"snake case", "user_id", false},
		{"with space", "order items", false},
		{"unicode", "bestellungen_größe", false},
		{"max length", strings.Repeat("a", MaxNameLength), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " users", true},
		{"trailing tab", "users\t", true},
		{"dotted table", "public.users", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("table", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateNameDotsInColumns(t *testing.T) {
	if err := ValidateName("column", "meta.version"); err != nil {
		t.Errorf("dotted column names should be allowed: %v", err)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "diagrams/shop.toml", false},
		{"absolute", "/tmp/shop.json", false},
		{"empty", "", true},
		{"control char", "shop\x01.toml", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayoutID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"3f1c9a7e-5b2d-4c8e-9f10-2a3b4c5d6e7f", false},
		{"", true},
		{"not-a-uuid", true},
		{"3F1C9A7E-5B2D-4C8E-9F10-2A3B4C5D6E7F", true},
		{"../../etc/passwd", true},
	}

	for _, tt := range tests {
		if err := ValidateLayoutID(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateLayoutID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
