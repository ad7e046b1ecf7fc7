package mock

import (
	"context"

	"github.com/fwojciec/casefeed"
)

var _ casefeed.CountryTranslator = (*CountryTranslator)(nil)

// CountryTranslator is a mock implementation of casefeed.CountryTranslator.
type CountryTranslator struct {
	TranslateCountryFn func(name string) string
}

func (t *CountryTranslator) TranslateCountry(name string) string {
	return t.TranslateCountryFn(name)
}

var _ casefeed.DecisionTypeTranslator = (*DecisionTypeTranslator)(nil)

// DecisionTypeTranslator is a mock implementation of casefeed.DecisionTypeTranslator.
type DecisionTypeTranslator struct {
	TranslateDecisionTypeFn func(raw string) string
}

func (t *DecisionTypeTranslator) TranslateDecisionType(raw string) string {
	return t.TranslateDecisionTypeFn(raw)
}

var _ casefeed.AuthorityTranslator = (*AuthorityTranslator)(nil)

// AuthorityTranslator is a mock implementation of casefeed.AuthorityTranslator.
type AuthorityTranslator struct {
	TranslateFullFn    func(name string) string
	TranslateAcronymFn func(name string) string
	RegulatorCodeFn    func(name string) (string, bool)
}

func (t *AuthorityTranslator) TranslateFull(name string) string {
	return t.TranslateFullFn(name)
}

func (t *AuthorityTranslator) TranslateAcronym(name string) string {
	return t.TranslateAcronymFn(name)
}

func (t *AuthorityTranslator) RegulatorCode(name string) (string, bool) {
	return t.RegulatorCodeFn(name)
}

var _ casefeed.BodyTranslator = (*BodyTranslator)(nil)

// BodyTranslator is a mock implementation of casefeed.BodyTranslator.
type BodyTranslator struct {
	TranslateBodyFn func(ctx context.Context, text string) (string, error)
}

func (t *BodyTranslator) TranslateBody(ctx context.Context, text string) (string, error) {
	return t.TranslateBodyFn(ctx, text)
}
