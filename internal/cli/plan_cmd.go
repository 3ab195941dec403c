package cli

import (
	"encoding/json"
	"fmt"

	"github.com/smarttravellers/tripplanner/internal/app"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/smarttravellers/tripplanner/pkg/trip_plan"
	"github.com/spf13/cobra"
)

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var request trip_plan.TripRequestDTO
	var pretty bool

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Generate a single trip plan and print it as JSON",
		Example: "  tripplanner plan --destination goa --theme food --theme heritage --days 5 --budget 50000",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			p, err := app.BuildPlanner(cfg, utils.SystemClock{})
			if err != nil {
				return err
			}

			input, err := trip_plan.DTOToInput(request)
			if err != nil {
				return err
			}
			plan, err := p.Plan(input)
			if err != nil {
				return fmt.Errorf("could not plan trip: %w", err)
			}

			out := cmd.OutOrStdout()
			encoder := json.NewEncoder(out)
			if pretty || (!cmd.Flags().Changed("pretty") && isTerminal(out)) {
				encoder.SetIndent("", "  ")
			}
			return encoder.Encode(trip_plan.PlanToDTO(plan))
		},
	}

	cmd.Flags().StringVar(&request.DestinationId, "destination", "", "Destination id, e.g. goa")
	cmd.Flags().StringSliceVar(&request.Themes, "theme", nil, "Theme to include; repeat or separate with commas")
	cmd.Flags().IntVar(&request.Duration, "days", 0, "Trip length in days")
	cmd.Flags().Int64Var(&request.Budget, "budget", 0, "Total budget in the smallest currency unit")
	cmd.Flags().StringVar(&request.Origin, "origin", "", "City the trip starts from")
	cmd.Flags().StringVar(&request.StartDate, "start", "", "First day of the trip as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output (default when writing to a terminal)")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("theme")

	return cmd
}
