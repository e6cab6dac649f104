package prompt

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/kilupskalvis/ps1/internal/config"
)

func TestShortPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"~", "~"},
		{"/var/lib/data", "/var/lib/data"},
		{"~/.local/lib/data", "~/.local/lib/data"},
		{"/var/atlassian/applicationdata", "/var/atlassian/applicationdata"},
		{"/var/atlassian/application-data", "…/atlassian/application-data"},
		{"/var/atlassian/application-data/jira", "…/application-data/jira"},
		{"~/var/atlassian/applicationdata", "…/atlassian/applicationdata"},
		{"~/Photos/Vacation_2000_summer_part_1_funny", "…/Vacation_2000_summer_part_1…"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := shortPath(tt.path, config.DefaultMaxCwdLen)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), config.DefaultMaxCwdLen)
		})
	}
}

// Tiny budgets still never exceed the budget; zero or less shows
// nothing rather than a stray ellipsis.
func TestShortPath_DegenerateBudgets(t *testing.T) {
	assert.Equal(t, "", shortPath("/var/lib/data", 0))
	assert.Equal(t, "", shortPath("/var/lib/data", -1))

	for budget := 1; budget <= 4; budget++ {
		got := shortPath("/var/lib/data", budget)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), budget, "budget %d", budget)
	}
}
