package br

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Maria  da  Silva ", "Maria da Silva"},
		{"Rua\tdas Flores,\n123", "Rua das Flores, 123"},
		{"ok", "ok"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFixMojibake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"corrupted name", "JoÃ£o", "João"},
		{"corrupted accents", "SÃ©rgio ConceiÃ§Ã£o", "Sérgio Conceição"},
		{"already clean", "João", "João"},
		{"plain ascii", "Maria", "Maria"},
		{"idempotent", FixMojibake("JoÃ£o"), "João"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixMojibake(tt.in); got != tt.want {
				t.Errorf("FixMojibake(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
