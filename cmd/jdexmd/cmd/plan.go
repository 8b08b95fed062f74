package cmd

import (
	"github.com/spf13/cobra"

	"github.com/graysonarts/jdexmd/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a run would do",
	Long: `Compute and print the action plan for the base folder and, when
configured, the reference folder. Nothing is written; this is the same plan
a real run executes.

Example:
  jdexmd -c jdex.toml plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := commands.NewPlanCommand(fs, systems, cfg.BaseFolder)
		base.Separator = cfg.Separator
		plan, err := base.Execute(cmd.Context())
		if err != nil {
			return err
		}
		printPlan("notes", cfg.BaseFolder, plan)

		if cfg.ReferenceFolder == "" {
			return nil
		}
		ref := commands.NewPlanCommand(fs, systems, cfg.ReferenceFolder)
		ref.Separator = cfg.Separator
		ref.DirsOnly = true
		refPlan, err := ref.Execute(cmd.Context())
		if err != nil {
			return err
		}
		printPlan("reference", cfg.ReferenceFolder, refPlan)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
