// Package pagelens extracts structured, AI-ready context from documentation
// web pages: the readable main content, in-content links, navigation regions,
// the heading outline, and code samples with language hints.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, sqlite/).
package pagelens
