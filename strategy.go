package casefeed

import "strings"

// Strategy pairs a detector with the extraction routines for one input
// shape. Implementations form a closed set (wikitable HTML, wikicode
// pipe markup, free prose) tried in a fixed priority order.
type Strategy interface {
	// Name returns the strategy's identifier (e.g., "Wikitable").
	Name() string

	// CanParse reports whether the strategy applies to the raw entry
	// body. It is cheap, side-effect-free, and never fails: internal
	// parse errors mean "not applicable".
	CanParse(raw string) bool

	// ExtractFields turns the raw body plus side hints into a
	// partially-filled record. The references and source URL are
	// attached verbatim. A sparse record is a valid result; only an
	// internal failure returns an error.
	ExtractFields(raw, sourceURL string, refs []string) (*Record, error)

	// ExtractReferences independently locates legal-article citations
	// in the raw body. It never fails; a structural mismatch returns
	// an empty slice.
	ExtractReferences(raw string) []string
}

// BoxType identifies a wiki decision-record template. Each box type
// carries its own key mapping.
type BoxType string

// Known decision box markers.
const (
	BoxCJEU  BoxType = "CJEUdecisionBOX"
	BoxDPA   BoxType = "DPAdecisionBOX"
	BoxCourt BoxType = "COURTdecisionBOX"
)

// FieldSetter assigns an extracted value to one record field.
type FieldSetter func(*Record, string)

// fieldSetters is the closed set of assignable record fields. Mapping
// tables refer to fields by these names and are validated against this
// set at construction, so a typo in a mapping fails loudly instead of
// silently dropping data.
var fieldSetters = map[string]FieldSetter{
	"authority":    func(r *Record, v string) { r.AuthorityRaw = v },
	"country":      func(r *Record, v string) { r.CountryRaw = v },
	"caseNumber":   func(r *Record, v string) { r.CaseNumber = v },
	"decisionType": func(r *Record, v string) { r.DecisionTypeRaw = v },
	"outcome":      func(r *Record, v string) { r.OutcomeRaw = v },
	"fine":         func(r *Record, v string) { r.FineAmountRaw = v },
	"date":         func(r *Record, v string) { r.DateRaw = v },
	"party":        func(r *Record, v string) { r.PartyName = v },
	"sourceURL":    func(r *Record, v string) { r.SourceURL = v },
}

// FieldMapping maps source labels (table row headers or wikicode keys)
// to record field names. Unmapped labels are ignored by design.
type FieldMapping map[string]string

// Validate returns an error if the mapping targets an unknown field.
func (m FieldMapping) Validate() error {
	for label, field := range m {
		if _, ok := fieldSetters[field]; !ok {
			return Errorf(EINVALID, "mapping %q targets unknown field %q", label, field)
		}
	}
	return nil
}

// Apply assigns value to the field mapped from label. It reports
// whether the label was recognized.
func (m FieldMapping) Apply(r *Record, label, value string) bool {
	field, ok := m[label]
	if !ok {
		return false
	}
	fieldSetters[field](r, value)
	return true
}

// MustValidate panics on an invalid mapping. Mapping tables are fixed
// at compile time, so this runs once during package init.
func (m FieldMapping) MustValidate() FieldMapping {
	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}

// WikitableMapping maps the row labels of an HTML decision table to
// record fields. Labels are matched after trailing colons are stripped.
var WikitableMapping = FieldMapping{
	"Authority":         "authority",
	"Court":             "authority",
	"DPA Abbrevation":   "authority",
	"Court Abbrevation": "authority",

	"Jurisdiction":              "country",
	"Case Number/Name":          "caseNumber",
	"National Case Number/Name": "caseNumber",
	"Type":                      "decisionType",
	"Outcome":                   "outcome",
	"Decided":                   "date",
	"Fine":                      "fine",
	"Parties":                   "party",
}.MustValidate()

// WikicodeMappings maps wikicode keys per box type. The DPA and court
// boxes file their "Outcome" key under the decision type; their "Type"
// key holds the original-language type and is deliberately unmapped.
var WikicodeMappings = map[BoxType]FieldMapping{
	BoxCJEU: FieldMapping{
		"Date_Decided":     "date",
		"Case_Number_Name": "caseNumber",
		"Judgement_Link":   "sourceURL",
	}.MustValidate(),
	BoxDPA: FieldMapping{
		"Jurisdiction":           "country",
		"DPA_Abbrevation":        "authority",
		"Case_Number_Name":       "caseNumber",
		"Original_Source_Link_1": "sourceURL",
		"Outcome":                "decisionType",
		"Date_Decided":           "date",
		"Fine":                   "fine",
		"Party_Name_1":           "party",
	}.MustValidate(),
	BoxCourt: FieldMapping{
		"Jurisdiction":           "country",
		"Court_Abbrevation":      "authority",
		"Case_Number_Name":       "caseNumber",
		"Original_Source_Link_1": "sourceURL",
		"Outcome":                "decisionType",
		"Date_Decided":           "date",
		"Fine":                   "fine",
		"Party_Name_1":           "party",
	}.MustValidate(),
}

// BoxTypes lists the known markers in detection order.
var BoxTypes = []BoxType{BoxCJEU, BoxDPA, BoxCourt}

// DetectBoxType returns the first known box marker present in raw
// wikicode, or "" if none is present.
func DetectBoxType(raw string) BoxType {
	for _, bt := range BoxTypes {
		if strings.Contains(raw, string(bt)) {
			return bt
		}
	}
	return ""
}
