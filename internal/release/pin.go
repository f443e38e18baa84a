package release

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// PinFilename is the pinned-metadata file the sync keeps up to date. The
// update commit is restricted to this path.
const PinFilename = "release-metadata.toml"

// BranchName is the fixed branch the update is committed on.
const BranchName = "sync-release-metadata"

const pinTemplate = `# Generated by ` + "`uv sync-releases`" + `. Do not edit by hand.
tag = "{{.TagName}}"
published-at = "{{.PublishedAt}}"
{{range .Assets}}
[[asset]]
name = "{{.Name}}"
{{- if .Digest}}
digest = "{{.Digest}}"
{{- end}}
size = {{.Size}}
url = "{{.DownloadURL}}"
{{end}}`

const bodyTemplate = `Automated update of {{.Pin}} to release {{.TagName}} ({{.Count}} asset{{if ne .Count 1}}s{{end}}).

Published: {{.PublishedAt}}

This pull request was opened by the scheduled release-sync job. Only {{.Pin}} is modified.
`

// Render produces the pinned-metadata file content for a release.
func Render(rel *Release) ([]byte, error) {
	tmpl, err := template.New("pin").Parse(pinTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rel); err != nil {
		return nil, fmt.Errorf("rendering release metadata: %w", err)
	}
	return buf.Bytes(), nil
}

// NeedsUpdate reports whether the file at path differs from content. A
// missing file always needs an update.
func NeedsUpdate(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path is the pinned metadata path
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return !bytes.Equal(existing, content), nil
}

// Proposal holds the fixed fields of the update branch and pull request.
type Proposal struct {
	Branch        string
	CommitMessage string
	Title         string
	Body          string
}

// BuildProposal renders the branch, commit, and pull-request fields for an
// update to the given release.
func BuildProposal(rel *Release) (*Proposal, error) {
	tmpl, err := template.New("body").Parse(bodyTemplate)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	err = tmpl.Execute(&body, struct {
		Pin         string
		TagName     string
		PublishedAt string
		Count       int
	}{PinFilename, rel.TagName, rel.PublishedAt, len(rel.Assets)})
	if err != nil {
		return nil, fmt.Errorf("rendering pull request body: %w", err)
	}

	title := fmt.Sprintf("Sync release metadata to %s", rel.TagName)
	return &Proposal{
		Branch:        BranchName,
		CommitMessage: title,
		Title:         title,
		Body:          body.String(),
	}, nil
}
