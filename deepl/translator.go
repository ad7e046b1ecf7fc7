// Package deepl provides decision-body translation through the DeepL
// REST API.
package deepl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/casefeed"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the DeepL API endpoint for free-tier keys.
const DefaultBaseURL = "https://api-free.deepl.com/v2/translate"

// defaultRPS keeps well under DeepL's request limits.
const defaultRPS = 2

// Ensure Translator implements casefeed.BodyTranslator.
var _ casefeed.BodyTranslator = (*Translator)(nil)

// Translator translates bulk text with the DeepL API. Requests are
// rate limited client-side; the context controls timeout and
// cancellation.
type Translator struct {
	client     *http.Client
	limiter    *rate.Limiter
	baseURL    string
	authKey    string
	targetLang string
}

// Option configures a Translator.
type Option func(*Translator)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Translator) { t.client = client }
}

// WithBaseURL overrides the API endpoint (pro tier, tests).
func WithBaseURL(baseURL string) Option {
	return func(t *Translator) { t.baseURL = baseURL }
}

// WithTargetLang overrides the target language (default "FR").
func WithTargetLang(lang string) Option {
	return func(t *Translator) { t.targetLang = lang }
}

// NewTranslator creates a Translator with the given API key.
func NewTranslator(authKey string, opts ...Option) *Translator {
	t := &Translator{
		client:     http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(defaultRPS), 1),
		baseURL:    DefaultBaseURL,
		authKey:    authKey,
		targetLang: "FR",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// TranslateBody translates text to the target language. An empty input
// translates to an empty output without a network call.
func (t *Translator) TranslateBody(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if t.authKey == "" {
		return "", casefeed.Errorf(casefeed.EINVALID, "deepl auth key required")
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", t.targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.authKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", casefeed.Errorf(casefeed.EINTERNAL, "deepl returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", casefeed.Errorf(casefeed.EINTERNAL, "decode deepl response: %v", err)
	}
	if len(decoded.Translations) == 0 {
		return "", casefeed.Errorf(casefeed.EINTERNAL, "deepl returned no translations")
	}

	return decoded.Translations[0].Text, nil
}
