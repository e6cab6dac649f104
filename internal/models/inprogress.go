package models

// InProgress represents a multi-step Git operation left incomplete,
// detectable via marker files inside the git directory.
type InProgress string

const (
	NoOperation   InProgress = ""
	Bisecting     InProgress = "BSECT"
	CherryPicking InProgress = "CHYPK"
	Merging       InProgress = "MERGE"
	Rebasing      InProgress = "REBAS"
	Reverting     InProgress = "REVRT"
)

// Tag returns the short display tag shown in the prompt, e.g. "MERGE"
func (p InProgress) Tag() string {
	return string(p)
}
