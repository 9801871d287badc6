package ibge

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "maria", "maria"},
		{"uppercase", "MARIA", "maria"},
		{"surrounding whitespace", "  Maria  ", "maria"},
		{"acute accent", "João", "joao"},
		{"tilde and cedilla", "Conceição", "conceicao"},
		{"circumflex", "Antônio", "antonio"},
		{"already normalized", "jose", "jose"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
