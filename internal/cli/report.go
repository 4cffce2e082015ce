package cli

import (
	"team-availability/internal/availability"

	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print aggregated availability for every team",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	teams, err := a.uc.TeamAvailability(cmd.Context())
	if err != nil {
		return err
	}
	return availability.Format(cmd.OutOrStdout(), teams)
}
