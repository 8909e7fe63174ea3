package usecase

import (
	"testing"

	"github.com/vinolens/backend/internal/domain"
)

func TestClassifyColor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.ColorType
	}{
		{"sparkling keyword", "CHAMPAGNE GRANDE CUVEE", domain.ColorSparkling},
		{"sparkling beats rose", "CRÉMANT ROSÉ DE LOIRE", domain.ColorSparkling},
		{"sparkling beats white", "BLANC DE BLANCS BRUT", domain.ColorSparkling},
		{"white keyword", "SANCERRE BLANC", domain.ColorWhite},
		{"white grape implies white", "CHARDONNAY RESERVE", domain.ColorWhite},
		{"rose with accent", "ROSÉ DE PROVENCE", domain.ColorRose},
		{"rose spanish", "VINO ROSADO", domain.ColorRose},
		{"sauvignon blanc is white", "SAUVIGNON BLANC MARLBOROUGH", domain.ColorWhite},
		{"cabernet sauvignon is red", "CABERNET SAUVIGNON NAPA", domain.ColorRed},
		{"default red", "CHÂTEAU MARGAUX 2015 BORDEAUX", domain.ColorRed},
		{"empty text defaults red", "", domain.ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyColor(tt.text); got != tt.want {
				t.Errorf("ClassifyColor(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
