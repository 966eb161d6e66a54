// Package kbingest ingests heterogeneous online technical content (blog
// posts, guides, newsletter posts) and local documents, normalizing all of
// it into a single structured collection of items suitable for downstream
// indexing. Given a set of seed URLs it decides, per URL, how to pull out a
// clean title/author/body, discovers further same-site article URLs when a
// seed is an index page rather than an article, and bounds the traversal to
// one site per run.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, http/).
package kbingest
