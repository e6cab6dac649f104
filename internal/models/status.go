// Package models defines the plain value types describing a repository's state.
package models

// RepoStatus is a snapshot of a Git repository's state, built fresh on
// every invocation and never mutated afterwards.
type RepoStatus struct {
	Head     Head
	Detached bool // true when HEAD is not a named branch

	// Ahead/Behind are commit counts relative to the upstream and are
	// meaningful only when HasUpstream is true.
	Ahead       int
	Behind      int
	HasUpstream bool

	Staged     bool // index differs from HEAD
	Unstaged   bool // working tree differs from index
	Untracked  bool // files present but neither tracked nor ignored
	Conflicted bool // any path in an unmerged state
	Stashed    bool // stash list non-empty

	InProgress InProgress

	Bare bool // no working tree, or invoked from inside the git dir
}
