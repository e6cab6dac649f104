package git

import (
	"os"
	"path/filepath"

	"github.com/kilupskalvis/ps1/internal/models"
)

// marker is one git-dir entry whose presence signals an operation in
// progress.
type marker struct {
	name  string
	isDir bool
	state models.InProgress
}

// Markers in display priority order; when several coexist (e.g. a merge
// hit during a bisect) the first match wins.
var markers = []marker{
	{"BISECT_LOG", false, models.Bisecting},
	{"CHERRY_PICK_HEAD", false, models.CherryPicking},
	{"MERGE_HEAD", false, models.Merging},
	{"rebase-merge", true, models.Rebasing},
	{"rebase-apply", true, models.Rebasing},
	{"REVERT_HEAD", false, models.Reverting},
}

// detectInProgress reports which multi-step operation, if any, the
// repository is in the middle of.
func detectInProgress(gitDir string) models.InProgress {
	for _, m := range markers {
		fi, err := os.Stat(filepath.Join(gitDir, m.name))
		if err != nil {
			continue
		}
		if fi.IsDir() == m.isDir {
			return m.state
		}
	}
	return models.NoOperation
}
