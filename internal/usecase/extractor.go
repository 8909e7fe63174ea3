package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vinolens/backend/internal/domain"
)

// Field extraction runs on the raw pre-normalization text: the keyword
// dictionaries are matched against uppercase raw tokens, before the
// normalizer has had a chance to strip them. The four extractors share no
// state and may run in any order, or concurrently.

// Compiled patterns for token extraction
var (
	// Candidate 4-digit year runs
	vintagePattern = regexp.MustCompile(`\d{4}`)

	// Token separators: anything that is not a letter or digit
	tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// domainDesignators are estate keywords that introduce a producer name.
// Keys are uppercase with accents folded.
var domainDesignators = map[string]bool{
	"CHATEAU": true, "DOMAINE": true, "DOMAIN": true, "CLOS": true,
	"MAISON": true, "MAS": true, "CAVE": true, "CAVES": true,
	"VIGNOBLE": true, "VIGNOBLES": true, "ABBAYE": true,
	"ESTATE": true, "WINERY": true, "VINEYARDS": true,
	"WEINGUT": true, "BODEGA": true, "BODEGAS": true,
	"CANTINA": true, "TENUTA": true, "CASTELLO": true, "PODERE": true,
	"QUINTA": true, "FINCA": true, "VILLA": true,
}

// wineRegions is the known wine-growing region dictionary. One canonical
// location field: country names are boilerplate (see ignoredWords), and
// sub-appellations that double as estate names stay out of this list.
var wineRegions = map[string]bool{
	// France
	"BORDEAUX": true, "BOURGOGNE": true, "BURGUNDY": true, "CHAMPAGNE": true,
	"LOIRE": true, "RHONE": true, "ALSACE": true, "PROVENCE": true,
	"BEAUJOLAIS": true, "LANGUEDOC": true, "ROUSSILLON": true, "JURA": true,
	"SAVOIE": true, "CAHORS": true, "MEDOC": true, "POMEROL": true,
	"SAUTERNES": true, "CHABLIS": true, "SANCERRE": true, "CHINON": true,
	"VOUVRAY": true,
	// Italy
	"CHIANTI": true, "BAROLO": true, "BARBARESCO": true, "TOSCANA": true,
	"TUSCANY": true, "PIEMONTE": true, "VENETO": true,
	// Spain / Portugal
	"RIOJA": true, "PRIORAT": true, "PENEDES": true, "DOURO": true,
	// Germany
	"MOSEL": true, "RHEINGAU": true, "PFALZ": true,
	// New world
	"CALIFORNIA": true, "NAPA": true, "SONOMA": true, "OREGON": true,
	"WILLAMETTE": true, "MENDOZA": true, "BAROSSA": true,
	"MARLBOROUGH": true, "STELLENBOSCH": true,
}

// grapeVarieties is the grape dictionary, matched token by token: compound
// varieties (cabernet sauvignon, pinot noir) are detected as their parts.
// Keys are uppercase with accents folded.
var grapeVarieties = map[string]bool{
	"CABERNET": true, "SAUVIGNON": true, "MERLOT": true, "PINOT": true,
	"CHARDONNAY": true, "SYRAH": true, "SHIRAZ": true, "GRENACHE": true,
	"MOURVEDRE": true, "CARIGNAN": true, "CINSAULT": true, "MALBEC": true,
	"RIESLING": true, "GAMAY": true, "VIOGNIER": true, "CHENIN": true,
	"SEMILLON": true, "MUSCAT": true, "SANGIOVESE": true, "NEBBIOLO": true,
	"BARBERA": true, "TEMPRANILLO": true, "GARNACHA": true, "VERDEJO": true,
	"ALBARINO": true, "ZINFANDEL": true, "PRIMITIVO": true,
	"VERMENTINO": true, "TREBBIANO": true, "GEWURZTRAMINER": true,
}

// maxGrapeVarieties caps the grape list on a candidate
const maxGrapeVarieties = 3

// maxDomainNameTokens caps how many tokens follow a designator into the
// captured estate name
const maxDomainNameTokens = 3

// ExtractVintage returns the first 4-digit run within the plausible vintage
// range. Multiple candidate years are not disambiguated: first in-range run
// wins. ok is false when no run is in range.
func ExtractVintage(text string) (int, bool) {
	for _, run := range vintagePattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		if year >= domain.MinVintage && year <= domain.MaxVintage {
			return year, true
		}
	}
	return 0, false
}

// ExtractDomain scans raw tokens for an estate designator and captures the
// designator plus up to the next 3 tokens as the producer name. Capture
// stops early at numeric, region, grape or boilerplate tokens, which belong
// to other fields. Returns the unknown-domain sentinel when no designator is
// found or the captured name is too short to be real.
func ExtractDomain(text string) string {
	tokens := labelTokens(text)

	for i, token := range tokens {
		if !domainDesignators[foldAccents(token)] {
			continue
		}

		name := []string{token}
		for j := i + 1; j < len(tokens) && len(name) <= maxDomainNameTokens; j++ {
			next := tokens[j]
			folded := foldAccents(next)
			if isNumeric(next) || ignoredWords[folded] ||
				wineRegions[folded] || grapeVarieties[folded] ||
				domainDesignators[folded] {
				break
			}
			name = append(name, next)
		}

		captured := strings.Join(name[1:], "")
		if len([]rune(captured)) <= 2 {
			return domain.UnknownDomain
		}
		return titleCase(strings.Join(name, " "))
	}

	return domain.UnknownDomain
}

// ExtractRegion returns the first token that exactly matches the region
// dictionary, title-cased, or the empty string
func ExtractRegion(text string) string {
	for _, token := range labelTokens(text) {
		if wineRegions[foldAccents(token)] {
			return titleCase(token)
		}
	}
	return ""
}

// ExtractGrapeVarieties returns dictionary-matched grape tokens in order of
// first appearance, deduplicated and capped at 3
func ExtractGrapeVarieties(text string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, token := range labelTokens(text) {
		folded := foldAccents(token)
		if !grapeVarieties[folded] || seen[folded] {
			continue
		}
		seen[folded] = true
		found = append(found, titleCase(token))
		if len(found) == maxGrapeVarieties {
			break
		}
	}

	return found
}

// labelTokens splits raw recognized text into uppercase tokens, dropping
// punctuation and symbols but keeping digits for vintage-adjacent checks
func labelTokens(text string) []string {
	cleaned := tokenSplitPattern.ReplaceAllString(strings.ToUpper(text), " ")
	return strings.Fields(cleaned)
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
