// Package lock handles building, parsing, and verifying the uv.lock file
// shared by all workspace members. The lockfile pins the discovered member
// set and each member's declared requirements, with a manifest digest per
// member for staleness detection. It does not record resolved versions.
package lock
