package usecase

import (
	"log"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compiled patterns for label text cleanup
var (
	// Keeps letters (accented included), space, hyphen, apostrophe.
	// Digits, punctuation and symbols from the label are noise for the name.
	disallowedCharsPattern = regexp.MustCompile(`[^\p{L} '\-]+`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// ignoredWords is generic label boilerplate that never belongs in a wine
// name: legal mentions, serving instructions, country names, packaging and
// volume terms. Keys are uppercase with accents folded.
var ignoredWords = map[string]bool{
	// Legal / appellation boilerplate
	"APPELLATION": true, "CONTROLEE": true, "PROTEGEE": true, "ORIGINE": true,
	"DENOMINAZIONE": true, "DENOMINACION": true, "INDICATION": true,
	"GEOGRAPHIQUE": true, "SUPERIEUR": true, "SUPERIEURE": true,

	// Serving instructions
	"SERVE": true, "SERVIR": true, "CHILLED": true, "FRAIS": true,
	"TEMPERATURE": true, "DEGUSTER": true,

	// Alcohol / volume mentions
	"ALC": true, "ALCOHOL": true, "ALCOOL": true, "VOL": true, "ABV": true,
	"CONTIENT": true, "CONTAINS": true, "SULFITES": true, "SULPHITES": true,

	// Packaging / bottling terms
	"MIS": true, "MISE": true, "BOUTEILLE": true, "EMBOUTEILLE": true,
	"BOTTLE": true, "BOTTLED": true, "BOTTLING": true, "PROPRIETE": true,
	"CL": true, "ML": true, "LITRE": true, "LITER": true,

	// Country names (location lives in the region field, bottles mention
	// the country as provenance boilerplate)
	"FRANCE": true, "ITALY": true, "ITALIA": true, "SPAIN": true,
	"ESPANA": true, "PORTUGAL": true, "GERMANY": true, "DEUTSCHLAND": true,
	"AUSTRALIA": true, "ARGENTINA": true, "CHILE": true, "AUSTRIA": true,

	// Generic product terms
	"PRODUCT": true, "PRODUIT": true, "PRODUCE": true, "IMPORTED": true,
	"WINE": true, "VIN": true, "VINO": true, "WEIN": true,
}

// NormalizerConfig holds configuration for the text normalizer
type NormalizerConfig struct {
	EnableDebugLogging bool
}

// TextNormalizer cleans raw recognized label text into a display name
type TextNormalizer struct {
	enableDebugLogging bool
}

// NewTextNormalizer creates a new text normalizer
func NewTextNormalizer(config NormalizerConfig) *TextNormalizer {
	return &TextNormalizer{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Normalize cleans one raw label text into a title-cased wine name.
// Pipeline: uppercase -> strip non-letter noise -> drop boilerplate and
// keyword-dictionary tokens -> collapse whitespace -> title case.
// If fewer than 3 characters survive the cleanup, the original input is
// returned unmodified: a bad cleanup must never erase text the user can
// still read.
func (n *TextNormalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	working := strings.ToUpper(raw)
	working = disallowedCharsPattern.ReplaceAllString(working, " ")

	// Word-boundary removal: tokens are compared whole, so an ignored word
	// inside a longer word is never stripped.
	var kept []string
	for _, word := range strings.Fields(working) {
		if isIgnoredToken(word) {
			continue
		}
		kept = append(kept, word)
	}

	cleaned := strings.Join(kept, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if len([]rune(cleaned)) < 3 {
		if n.enableDebugLogging {
			log.Printf("[NORMALIZE] cleanup left %q from %q, keeping original", cleaned, raw)
		}
		return raw
	}

	return titleCase(cleaned)
}

// Deloop re-cases a fully upper-case token without boilerplate removal.
// Used for fields already isolated to a single value, where dictionary
// stripping would be destructive. Anything not shouted is returned as is.
func (n *TextNormalizer) Deloop(raw string) string {
	if len([]rune(raw)) <= 3 {
		return raw
	}
	if raw != strings.ToUpper(raw) || raw == strings.ToLower(raw) {
		return raw
	}
	return titleCase(raw)
}

// ContainsIgnoredWord reports whether any token of s is still a boilerplate
// or dictionary keyword. A true result after Normalize means the cleanup
// leaked, and the caller should prefer the extracted domain as the name.
func (n *TextNormalizer) ContainsIgnoredWord(s string) bool {
	for _, word := range strings.Fields(strings.ToUpper(s)) {
		if isIgnoredToken(word) {
			return true
		}
	}
	return false
}

// isIgnoredToken checks a single uppercase token against the boilerplate
// dictionary plus the extraction keyword dictionaries. Designators, regions
// and grapes are extracted into their own fields, so they are noise in the
// name.
func isIgnoredToken(word string) bool {
	folded := foldAccents(strings.Trim(word, "'-"))
	return ignoredWords[folded] ||
		domainDesignators[folded] ||
		wineRegions[folded] ||
		grapeVarieties[folded]
}

// foldAccents strips combining marks so dictionary lookups are accent
// insensitive (CHATEAU and CHÂTEAU hit the same key)
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// titleCase capitalizes the first letter of each word, lowercasing the rest
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
