package models

// HeadKind classifies what HEAD currently resolves to
type HeadKind int

const (
	HeadBranch HeadKind = iota // named branch checked out
	HeadTag                    // detached, commit matches a tag exactly
	HeadCommit                 // detached on a plain commit
	HeadUnborn                 // branch ref exists but has no commits yet
)

// Head describes the current HEAD position
type Head struct {
	Kind HeadKind
	Name string // branch name, tag name, or short commit hash
}
