// Package translate provides map-backed lookup tables for country
// names, decision types, and supervisory authorities, with optional
// overrides loaded from a YAML file.
package translate

import (
	"os"

	"github.com/fwojciec/casefeed"
	"gopkg.in/yaml.v3"
)

// Tables holds the lookup tables in their YAML-serializable form.
// Every table is keyed by the source string as it appears in the feed.
type Tables struct {
	// Countries maps English country names to French.
	Countries map[string]string `yaml:"countries"`

	// DecisionTypes maps raw outcome/type values to normalized French
	// categories.
	DecisionTypes map[string]string `yaml:"decisionTypes"`

	// Authorities maps authority names to their full French name.
	Authorities map[string]string `yaml:"authorities"`

	// Acronyms maps authority names to the compact acronym used in
	// titles and filenames.
	Acronyms map[string]string `yaml:"acronyms"`

	// RegulatorCodes maps authority names to a fixed regulator code.
	RegulatorCodes map[string]string `yaml:"regulatorCodes"`
}

// DefaultTables returns the built-in tables covering the authorities
// and jurisdictions most common on the feed.
func DefaultTables() Tables {
	return Tables{
		Countries: map[string]string{
			"Austria":        "Autriche",
			"Belgium":        "Belgique",
			"Croatia":        "Croatie",
			"Czech Republic": "Tchéquie",
			"Denmark":        "Danemark",
			"Finland":        "Finlande",
			"France":         "France",
			"Germany":        "Allemagne",
			"Greece":         "Grèce",
			"Hungary":        "Hongrie",
			"Iceland":        "Islande",
			"Ireland":        "Irlande",
			"Italy":          "Italie",
			"Luxembourg":     "Luxembourg",
			"Netherlands":    "Pays-Bas",
			"Norway":         "Norvège",
			"Poland":         "Pologne",
			"Portugal":       "Portugal",
			"Romania":        "Roumanie",
			"Spain":          "Espagne",
			"Sweden":         "Suède",
			"United Kingdom": "Royaume-Uni",
			"European Union": "Union européenne",
		},
		DecisionTypes: map[string]string{
			"Violation Found":            "condamnation",
			"No Violation Found":         "rejet",
			"Partly Violation Found":     "condamnation partielle",
			"Complaint Upheld":           "condamnation",
			"Complaint Rejected":         "rejet",
			"Complaint Partly Upheld":    "condamnation partielle",
			"Appeal Upheld":              "appel accueilli",
			"Appeal Rejected":            "appel rejeté",
			"Investigation Discontinued": "classement sans suite",
		},
		Authorities: map[string]string{
			"CNIL":    "Commission Nationale de l'Informatique et des Libertés",
			"AEPD":    "Agence espagnole de protection des données",
			"Garante": "Autorité italienne de protection des données",
			"DSB":     "Autorité autrichienne de protection des données",
			"APD/GBA": "Autorité belge de protection des données",
			"AP":      "Autorité néerlandaise de protection des données",
			"CJUE":    "Cour de justice de l'Union européenne",
			"EDPB":    "Comité européen de la protection des données",
			"ICO":     "Autorité britannique de protection des données",
			"HDPA":    "Autorité grecque de protection des données",
			"UODO":    "Autorité polonaise de protection des données",
			"DPC":     "Autorité irlandaise de protection des données",
		},
		Acronyms: map[string]string{
			"Commission Nationale de l'Informatique et des Libertés": "CNIL",
			"Court of Justice of the European Union":                 "CJUE",
			"European Data Protection Board":                         "EDPB",
			"Information Commissioner's Office":                      "ICO",
		},
		RegulatorCodes: map[string]string{
			"CNIL": "CNIL",
			"Commission Nationale de l'Informatique et des Libertés": "CNIL",
		},
	}
}

// Ensure Translator implements the translation interfaces.
var (
	_ casefeed.CountryTranslator      = (*Translator)(nil)
	_ casefeed.DecisionTypeTranslator = (*Translator)(nil)
	_ casefeed.AuthorityTranslator    = (*Translator)(nil)
)

// Translator answers lookups from its tables. Unknown values pass
// through unchanged so a missing table entry degrades output rather
// than dropping data.
type Translator struct {
	tables Tables
}

// NewTranslator creates a Translator over the default tables.
func NewTranslator() *Translator {
	return &Translator{tables: DefaultTables()}
}

// NewTranslatorFromYAML creates a Translator with the default tables
// merged under the entries of a YAML file.
func NewTranslatorFromYAML(path string) (*Translator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, casefeed.Errorf(casefeed.ENOTFOUND, "read tables file: %v", err)
	}

	var overrides Tables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, casefeed.Errorf(casefeed.EINVALID, "parse tables file: %v", err)
	}

	tables := DefaultTables()
	merge(tables.Countries, overrides.Countries)
	merge(tables.DecisionTypes, overrides.DecisionTypes)
	merge(tables.Authorities, overrides.Authorities)
	merge(tables.Acronyms, overrides.Acronyms)
	merge(tables.RegulatorCodes, overrides.RegulatorCodes)

	return &Translator{tables: tables}, nil
}

// TranslateCountry returns the French country name.
func (t *Translator) TranslateCountry(name string) string {
	return lookup(t.tables.Countries, name)
}

// TranslateDecisionType returns the normalized French category.
func (t *Translator) TranslateDecisionType(raw string) string {
	return lookup(t.tables.DecisionTypes, raw)
}

// TranslateFull returns the authority's full French name.
func (t *Translator) TranslateFull(name string) string {
	return lookup(t.tables.Authorities, name)
}

// TranslateAcronym returns the authority's compact acronym. Names
// already in acronym form pass through unchanged.
func (t *Translator) TranslateAcronym(name string) string {
	return lookup(t.tables.Acronyms, name)
}

// RegulatorCode returns the authority's regulator code and whether the
// authority is known.
func (t *Translator) RegulatorCode(name string) (string, bool) {
	code, ok := t.tables.RegulatorCodes[name]
	return code, ok
}

func lookup(table map[string]string, key string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
