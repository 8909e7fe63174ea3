package usecase

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vinolens/backend/internal/domain"
)

func TestEnrich(t *testing.T) {
	svc := NewEnrichmentService(EnrichmentConfig{})
	ctx := context.Background()

	t.Run("full label", func(t *testing.T) {
		raw := "CHÂTEAU MARGAUX 2015 APPELLATION BORDEAUX CABERNET SAUVIGNON MERLOT"
		candidate := svc.Enrich(ctx, raw, "img-001")

		if candidate.Name != "Margaux" {
			t.Errorf("Name = %q, want %q", candidate.Name, "Margaux")
		}
		if candidate.Domain != "Château Margaux" {
			t.Errorf("Domain = %q, want %q", candidate.Domain, "Château Margaux")
		}
		if candidate.Vintage != 2015 {
			t.Errorf("Vintage = %d, want 2015", candidate.Vintage)
		}
		if candidate.Region != "Bordeaux" {
			t.Errorf("Region = %q, want %q", candidate.Region, "Bordeaux")
		}
		wantGrapes := []string{"Cabernet", "Sauvignon", "Merlot"}
		if !reflect.DeepEqual(candidate.GrapeVarieties, wantGrapes) {
			t.Errorf("GrapeVarieties = %v, want %v", candidate.GrapeVarieties, wantGrapes)
		}
		if candidate.Color != domain.ColorRed {
			t.Errorf("Color = %v, want red", candidate.Color)
		}
		if candidate.SourceImageRef != "img-001" {
			t.Errorf("SourceImageRef = %q, want img-001", candidate.SourceImageRef)
		}
	})

	t.Run("short name promotes extracted domain", func(t *testing.T) {
		// Only "Huet" (4 chars) survives normalization, so the estate
		// becomes the display name and the domain is cleared
		candidate := svc.Enrich(ctx, "VIN DOMAINE HUET 2019", "img-002")

		if candidate.Name != "Domaine Huet" {
			t.Errorf("Name = %q, want %q", candidate.Name, "Domaine Huet")
		}
		if candidate.Domain != domain.UnknownDomain {
			t.Errorf("Domain = %q, want unknown sentinel", candidate.Domain)
		}
		if candidate.Vintage != 2019 {
			t.Errorf("Vintage = %d, want 2019", candidate.Vintage)
		}
	})

	t.Run("missing vintage defaults to current year", func(t *testing.T) {
		candidate := svc.Enrich(ctx, "CHÂTEAU TALBOT SAINT JULIEN", "img-003")
		if candidate.Vintage != time.Now().Year() {
			t.Errorf("Vintage = %d, want %d", candidate.Vintage, time.Now().Year())
		}
	})

	t.Run("missing domain uses sentinel", func(t *testing.T) {
		candidate := svc.Enrich(ctx, "SIMPLE TABLE BLEND 2020", "img-004")
		if candidate.Domain != domain.UnknownDomain {
			t.Errorf("Domain = %q, want %q", candidate.Domain, domain.UnknownDomain)
		}
	})

	t.Run("name is never empty", func(t *testing.T) {
		inputs := []string{"", "   ", "!!", "1234", "%%%%%", "\n\t"}
		for _, input := range inputs {
			candidate := svc.Enrich(ctx, input, "img-005")
			if strings.TrimSpace(candidate.Name) == "" {
				t.Errorf("Enrich(%q) returned empty name", input)
			}
		}
	})

	t.Run("empty input yields placeholder with defaults", func(t *testing.T) {
		candidate := svc.Enrich(ctx, "", "img-006")

		if candidate.Name != PlaceholderName {
			t.Errorf("Name = %q, want %q", candidate.Name, PlaceholderName)
		}
		if candidate.Domain != domain.UnknownDomain {
			t.Errorf("Domain = %q, want sentinel", candidate.Domain)
		}
		if candidate.Color != domain.ColorRed {
			t.Errorf("Color = %v, want red", candidate.Color)
		}
		if candidate.SourceImageRef != "img-006" {
			t.Errorf("SourceImageRef = %q, want img-006", candidate.SourceImageRef)
		}
	})
}
