// Package release fetches release metadata from the distribution endpoint
// and keeps the pinned metadata file in sync: it renders the file from the
// fetched release, detects staleness, and prepares the branch, commit
// message, and pull-request fields for the update.
package release
