package usecase

import "github.com/vinolens/backend/internal/domain"

// Color keyword dictionaries, checked in fixed priority order:
// sparkling > white > rosé. Red is the default, not a detected state.
// Keys are uppercase with accents folded.
var (
	sparklingKeywords = map[string]bool{
		"CHAMPAGNE": true, "CREMANT": true, "MOUSSEUX": true,
		"PETILLANT": true, "SPARKLING": true, "SPUMANTE": true,
		"FRIZZANTE": true, "PROSECCO": true, "CAVA": true,
		"BRUT": true, "SEKT": true,
	}

	whiteKeywords = map[string]bool{
		"BLANC": true, "BLANCS": true, "WHITE": true, "BIANCO": true,
		"BLANCO": true, "CHARDONNAY": true, "RIESLING": true,
		"VIOGNIER": true, "CHENIN": true, "ALBARINO": true,
		"VERDEJO": true, "GEWURZTRAMINER": true,
	}

	roseKeywords = map[string]bool{
		"ROSE": true, "ROSADO": true, "ROSATO": true, "BLUSH": true,
	}
)

// ClassifyColor infers the wine color from keyword presence in the raw
// recognized text. Priority order matters: a label carrying both sparkling
// and rosé terms classifies as sparkling.
func ClassifyColor(text string) domain.ColorType {
	tokens := labelTokens(text)

	folded := make([]string, 0, len(tokens))
	for _, token := range tokens {
		folded = append(folded, foldAccents(token))
	}

	for _, token := range folded {
		if sparklingKeywords[token] {
			return domain.ColorSparkling
		}
	}
	for _, token := range folded {
		if whiteKeywords[token] {
			return domain.ColorWhite
		}
	}
	for _, token := range folded {
		if roseKeywords[token] {
			return domain.ColorRose
		}
	}

	return domain.ColorRed
}
