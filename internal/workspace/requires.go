package workspace

import (
	"fmt"
	"strconv"
	"strings"
)

// RequiresPython computes the workspace-wide Python requirement: the union
// of member requirements, which for lower-bound constraints is the minimum
// lower bound. Members without a requirement are ignored. Constraints that
// carry no lower bound are returned verbatim when they are the only form
// present, and rejected when they conflict with a bounded one. When the
// bounded members disagree, the union is widened to the bare lowest bound;
// upper-bound clauses survive only when every member declares the same
// constraint.
func (w *Workspace) RequiresPython() (string, error) {
	var (
		best      string
		bestMajor int
		bestMinor int
		uniform   = true
		other     string
	)
	for _, m := range w.Members {
		req := m.Manifest.Project.RequiresPython
		if req == "" {
			continue
		}
		major, minor, ok := lowerBound(req)
		if !ok {
			if other != "" && other != req {
				return "", fmt.Errorf("conflicting requires-python constraints: %q and %q", other, req)
			}
			other = req
			continue
		}
		if best != "" && req != best {
			uniform = false
		}
		if best == "" || major < bestMajor || (major == bestMajor && minor < bestMinor) {
			best, bestMajor, bestMinor = req, major, minor
		}
	}
	if best == "" {
		return other, nil
	}
	if other != "" {
		return "", fmt.Errorf("conflicting requires-python constraints: %q and %q", best, other)
	}
	if !uniform {
		return fmt.Sprintf(">=%d.%d", bestMajor, bestMinor), nil
	}
	return best, nil
}

// lowerBound extracts the major/minor lower bound from a constraint such
// as ">=3.8" or ">=3.8, <4". Returns ok=false when no >= clause exists.
func lowerBound(constraint string) (major, minor int, ok bool) {
	for _, part := range strings.Split(constraint, ",") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, ">=") {
			continue
		}
		ver := strings.TrimSpace(strings.TrimPrefix(part, ">="))
		fields := strings.SplitN(ver, ".", 3)
		if len(fields) < 2 {
			continue
		}
		maj, err1 := strconv.Atoi(fields[0])
		mnr, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			continue
		}
		return maj, mnr, true
	}
	return 0, 0, false
}
