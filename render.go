package casefeed

import "strings"

// FormatReferences renders citations as a quoted, comma-joined list.
// An empty list renders as an empty string, giving an empty bracketed
// group in the document header.
func FormatReferences(refs []string) string {
	if len(refs) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(refs))
	for _, ref := range refs {
		quoted = append(quoted, `"`+ref+`"`)
	}
	return strings.Join(quoted, ", ")
}

// RenderDocument renders a normalized record as a Markdown case note:
// a metadata header, a links block, the fenced citation title, and the
// translated body.
func RenderDocument(rec *Record) string {
	authority := rec.AuthorityTranslated
	if authority == "" {
		authority = rec.AuthorityRaw
	}

	body := rec.TranslatedBodyText
	if body == "" {
		body = rec.BodyText
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("aliases: []\n")
	b.WriteString("creation: " + rec.CreatedAt + "\n")
	b.WriteString("griefs: [" + FormatReferences(rec.LegalReferences) + "]\n")
	b.WriteString("pays: " + rec.Country + "\n")
	b.WriteString("juridiction: " + authority + "\n")
	b.WriteString("date: " + rec.ISODate + "\n")
	b.WriteString("type: " + rec.DecisionType + "\n")
	b.WriteString("sanction: " + rec.Outcome + "\n")
	b.WriteString("quantum: " + rec.FineAmount + "\n")
	b.WriteString("domaine: []\n")
	b.WriteString("sanctionCtr: []\n")
	b.WriteString("champ: " + rec.Category + "\n")
	b.WriteString("---\n")
	b.WriteString("**Liens**:\n")
	b.WriteString("**Autorité**: " + rec.AuthorityRaw + "\n")
	b.WriteString("**Sources**: [GDPRHub](" + rec.ID + ") ; [Original](" + rec.SourceURL + ")\n")
	b.WriteString("\n---\n")
	b.WriteString("```\n")
	b.WriteString(rec.AuthorityAcronym + ", " + rec.DisplayDate + ", " + rec.PartyName + "n° " + rec.CaseNumber + "\n")
	b.WriteString("```\n")
	b.WriteString("---\n")
	b.WriteString("#AI_intégrer\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}
