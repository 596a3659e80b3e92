// Package newsdigest fetches news articles, extracts their title and body
// text, produces a short extractive summary of each body, and writes the
// aggregated results to a CSV file.
//
// This package contains domain types, interfaces and the summarization core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, rod/).
package newsdigest
