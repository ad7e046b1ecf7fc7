// Package casefeed normalizes semi-structured GDPR decision records
// published on the GDPRhub feed into one canonical record shape and
// renders them as Markdown case notes. Entries arrive as HTML tables,
// wiki-markup decision boxes, or free prose; a cascade of parsing
// strategies extracts a fixed schema of fields from whichever shape is
// present, and a shared normalization stage cleans, translates, and
// derives the remaining fields.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// deepl/, fs/).
package casefeed
