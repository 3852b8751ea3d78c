// Package tfdocs extracts named documentation sections from rendered
// Terraform Registry resource pages and reformats them as embeddable
// markdown. It locates heading-delimited regions by name (with prefix
// tolerance), merges repeated same-named sections, and renders the
// result as markdown or plain text.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// htmltomarkdown/, rod/, sqlite/).
package tfdocs
