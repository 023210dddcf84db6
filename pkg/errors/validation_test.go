package errors

import (
	"strings"
	"testing"
)

func TestValidateActorName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Kevin Bacon", false},
		{"apostrophe", "Nobody's Friend", false},
		{"unicode", "Zoë Saldaña", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"pipe", "a|b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActorName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateActorName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateActorName(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name      string
		low, high int
		wantErr   bool
	}{
		{"equal", 2, 2, false},
		{"ordered", 0, 6, false},
		{"reversed", 4, 1, true},
		{"negative low", -1, 3, true},
		{"negative high", 0, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.low, tt.high)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%d, %d) error = %v, wantErr %v", tt.low, tt.high, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRange) {
				t.Errorf("ValidateRange code = %v", GetCode(err))
			}
		})
	}
}

func TestValidateDataPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "data/actors.txt", false},
		{"absolute", "/var/lib/sixdegrees/movies.txt", false},

		{"empty", "", true},
		{"null byte", "data/\x00actors.txt", true},
		{"control char", "data/\x01actors.txt", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDataPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDataPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
