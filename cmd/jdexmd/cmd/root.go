package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graysonarts/jdexmd/internal/adapters/filesystem"
	"github.com/graysonarts/jdexmd/internal/adapters/handlebars"
	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/application/commands"
	"github.com/graysonarts/jdexmd/internal/config"
	"github.com/graysonarts/jdexmd/internal/ports"
)

var version = "0.1.0"

var (
	configFile string
	dryRun     bool

	cfg     *config.Config
	systems []*application.Node
	fs      ports.Filesystem
)

var rootCmd = &cobra.Command{
	Use:     "jdexmd",
	Version: version,
	Short:   "Generate a Johnny Decimal folder scaffold with markdown notes",
	Long: `jdexmd turns a tab-indented Johnny Decimal hierarchy into a directory
tree with templated markdown notes and a regenerated JDex index.

Runs are idempotent: existing directories and notes are left alone, only
missing ones are created, and the index file is rewritten every time.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return loadSystem()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := commands.NewGenerateCommand(fs, handlebars.New(), systems)
		gen.BaseFolder = cfg.BaseFolder
		gen.ReferenceFolder = cfg.ReferenceFolder
		gen.Separator = cfg.Separator
		gen.Templates = cfg.Templates()
		gen.DryRun = dryRun

		result, err := gen.Execute(cmd.Context())
		if result != nil {
			printResult(result)
		}
		return err
	},
}

func loadSystem() error {
	if configFile == "" {
		return fmt.Errorf("no config file: pass --config-file or set %s", config.EnvConfigFile)
	}

	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	var warnings []string
	systems, warnings, err = application.BuildSystems(cfg.Hierarchy, cfg.SystemID, cfg.Name)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	fs = filesystem.New()
	return nil
}

func printResult(result *commands.GenerateResult) {
	if dryRun {
		printPlan("notes", cfg.BaseFolder, result.NotesPlan)
		if cfg.ReferenceFolder != "" {
			printPlan("reference", cfg.ReferenceFolder, result.ReferencePlan)
		}
		return
	}
	printReport("notes", result.NotesReport)
	printReport("reference", result.ReferenceReport)
}

func printPlan(root, folder string, plan application.Plan) {
	fmt.Printf("%s (%s): %d actions, %d mutations\n", root, folder, len(plan), plan.Mutations())
	out := plan.String()
	if out != "" {
		fmt.Print(out)
	}
}

func printReport(root string, report *commands.ApplyReport) {
	if report == nil {
		return
	}
	fmt.Printf("%s: %d applied, %d skipped", root, len(report.Completed), len(report.Skipped))
	if report.Failed != nil {
		fmt.Printf(", failed at %s (%d never attempted)", report.Failed.Path, len(report.Remaining))
	}
	fmt.Println()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config-file", "c", config.Path(),
		"path to the TOML config file (defaults to $"+config.EnvConfigFile+")")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false,
		"print the plan without touching the filesystem")
}
