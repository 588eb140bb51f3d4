// Package source implements the per-site scrapers that normalize listing
// pages into HackathonEvent records.
//
// Each Source fetches one site (Devpost HTML, the MLH season JSON, or the
// local curated file) and returns zero or more normalized records. A page
// whose structure no longer matches the parser comes back as *ParseError;
// callers log it and move on to the next source.
package source
