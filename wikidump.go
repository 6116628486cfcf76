// Package wikidump extracts clean, structured articles from Wikipedia
// Enterprise HTML dumps. Each dump line carries the rendered HTML of one
// wiki page; the extractor reduces it to plain body text plus optional
// infobox, table and list structures, preserving reading order and
// dropping navigational noise.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package wikidump
