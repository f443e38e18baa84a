// Package docs parses the documentation-site configuration (mkdocs.yml)
// and checks it for consistency: navigation entries must point at existing
// documents, enabled markdown extensions must be recognized, and referenced
// pages must parse as markdown.
package docs
