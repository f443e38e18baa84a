// Package git provides a wrapper around the Git CLI commands this tool
// needs: repository init, branch creation, staging restricted paths, and
// committing the release-metadata update.
package git
