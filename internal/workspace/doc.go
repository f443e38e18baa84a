// Package workspace discovers member packages from the glob patterns in a
// workspace root manifest. It provides the Workspace type holding resolved
// paths and loaded manifests, root discovery by walking up the tree, and
// the combined requires-python computation across members.
package workspace
