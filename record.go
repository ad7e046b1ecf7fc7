package casefeed

// Sentinel values used throughout the pipeline.
const (
	// AuthorityUnknown marks a record whose authority could not be
	// extracted. It is an explicit placeholder, never empty.
	AuthorityUnknown = "NON_DEFINI"

	// SentinelISODate is substituted when no valid decision date was
	// extracted. Chosen to sort before any real decision.
	SentinelISODate = "1601-01-01"

	// ReferencesFailure is the single citation stored on a record whose
	// extraction failed entirely.
	ReferencesFailure = "Erreur"

	// StrategyUnknown is stamped on records no strategy produced.
	StrategyUnknown = "unknown"
)

// OutcomeFine tags records carrying a monetary fine. Records without a
// fine carry an empty outcome.
const OutcomeFine = "amende"

// CategorySanctionCNIL tags decisions issued by the French regulator.
// It drives downstream filing; other authorities carry no category.
const CategorySanctionCNIL = "sanctionCNIL"

// Record is the canonical normalized decision record. It is created
// empty for one feed entry, filled by exactly one strategy, finalized
// by the Normalizer, and handed off immutable to rendering. Records
// are never retained beyond one processing pass.
type Record struct {
	// Identity.
	ID        string `json:"id"`
	SourceURL string `json:"sourceUrl"`

	// Raw fields as extracted by the selected strategy.
	AuthorityRaw    string   `json:"authorityRaw"`
	CountryRaw      string   `json:"countryRaw"`
	CaseNumber      string   `json:"caseNumber"`
	DecisionTypeRaw string   `json:"decisionTypeRaw"`
	OutcomeRaw      string   `json:"outcomeRaw"`
	FineAmountRaw   string   `json:"fineAmountRaw"`
	DateRaw         string   `json:"dateRaw"`
	PartyName       string   `json:"partyName"`
	LegalReferences []string `json:"legalReferences"`

	// Derived during normalization.
	AuthorityTranslated string `json:"authorityTranslated"`
	AuthorityAcronym    string `json:"authorityAcronym"`
	Country             string `json:"country"`
	DecisionType        string `json:"decisionType"`
	Outcome             string `json:"outcome"`
	FineAmount          string `json:"fineAmount"` // digits only, or empty
	ISODate             string `json:"isoDate"`
	DisplayDate         string `json:"displayDate"`
	Category            string `json:"category"`
	ProposedFilename    string `json:"proposedFilename"`
	CreatedAt           string `json:"createdAt"`

	// Content.
	BodyText           string `json:"bodyText"`
	TranslatedBodyText string `json:"translatedBodyText"`

	// Metadata.
	FromFeed     bool   `json:"fromFeed"`
	StrategyUsed string `json:"strategyUsed"`
}

// Validate returns an error if the record is not fit for rendering.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	if r.ProposedFilename == "" {
		return Errorf(EINVALID, "record proposed filename required")
	}
	return nil
}
