package cli

import (
	"fmt"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/spf13/pflag"
)

// statusValue is a pflag.Value for the closed project status enum, so bad
// status strings are rejected at flag-parse time.
type statusValue domain.ProjectStatus

var _ pflag.Value = (*statusValue)(nil)

func (s *statusValue) String() string { return string(*s) }

func (s *statusValue) Set(v string) error {
	if !domain.ProjectStatus(v).Valid() {
		return fmt.Errorf("must be one of %q, %q, %q",
			domain.StatusPlanning, domain.StatusInProgress, domain.StatusCompleted)
	}
	*s = statusValue(v)
	return nil
}

func (s *statusValue) Type() string { return "status" }
