package casefeed

import "context"

// CountryTranslator maps an English country name to its French form.
// Unknown names pass through unchanged.
type CountryTranslator interface {
	TranslateCountry(name string) string
}

// DecisionTypeTranslator maps a raw decision outcome/type to its
// normalized French category. Unknown values pass through unchanged.
type DecisionTypeTranslator interface {
	TranslateDecisionType(raw string) string
}

// AuthorityTranslator resolves supervisory-authority names.
type AuthorityTranslator interface {
	// TranslateFull returns the authority's full French name.
	TranslateFull(name string) string

	// TranslateAcronym returns the authority's compact acronym used in
	// titles and filenames.
	TranslateAcronym(name string) string

	// RegulatorCode maps an authority to its fixed regulator code.
	// The second return is false when the authority is unknown.
	RegulatorCode(name string) (string, bool)
}

// BodyTranslator translates bulk decision text.
type BodyTranslator interface {
	TranslateBody(ctx context.Context, text string) (string, error)
}
