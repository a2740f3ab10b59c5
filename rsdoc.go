// Package rsdoc provides a documentation-resolution client for Rust crates.
// It resolves crate names and item paths (e.g. tokio::sync::Mutex) to pages
// on docs.rs or doc.rust-lang.org, extracts structured records from the
// rustdoc HTML, and serves them through a cached query API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, http/).
package rsdoc

// Version identifies this client in outgoing User-Agent headers.
const Version = "1.0"
