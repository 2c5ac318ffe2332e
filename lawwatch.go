// Package lawwatch provides a CLI-based ingestion tool for Singapore
// legal reference material. It scrapes legal chapters from the Singapore
// Law Watch site, breaks each chapter into retrievable content fragments
// anchored to numbered paragraphs, and pairs legal news headlines from
// the site's RSS feed with AI-generated summaries.
//
// This package contains domain types, interfaces, and the pure
// content-fragmentation engine, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., sqlite/, goquery/, gemini/).
package lawwatch
