package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bosscheck/internal/checklist"
	"bosscheck/internal/config"
	"bosscheck/internal/ui"
)

var exit = os.Exit

var (
	cfgFile  string
	saveFile string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "bosscheck",
})

// rootCmd represents the base command when called without any subcommands.
// Running it bare opens the checklist, matching the original tool's
// open-a-window-and-go behavior.
var rootCmd = &cobra.Command{
	Use:   "bosscheck",
	Short: "Boss Checker: a region-grouped boss completion checklist",
	Long: `Boss Checker tracks which bosses you have beaten, grouped by region.

It loads the boss catalog from boss_data.json, keeps your completion marks
in default_save.json, and writes the save file after every toggle. Paths
are configurable through config.json, created on first run.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecklist()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")
	rootCmd.PersistentFlags().StringVar(&saveFile, "save", "", "save file (overrides the configured default_save)")
}

func initEnv() {
	// explicit .env loading, missing file is fine
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env")
	}
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath
}

// resolveSavePath loads the config and applies the --save override.
func resolveSavePath() (string, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return "", err
	}
	if saveFile != "" {
		return saveFile, nil
	}
	return cfg.DefaultSave, nil
}

// loadAll resolves config, completion state and catalog, returning the
// built row list and the effective save path.
func loadAll() ([]checklist.Row, string, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, "", err
	}

	savePath := cfg.DefaultSave
	if saveFile != "" {
		savePath = saveFile
	}

	state, err := checklist.LoadState(savePath)
	if err != nil {
		return nil, "", err
	}
	catalog, err := checklist.LoadCatalog(cfg.ChecklistPath)
	if err != nil {
		return nil, "", err
	}

	return checklist.BuildRows(catalog, state), savePath, nil
}

func runChecklist() error {
	rows, savePath, err := loadAll()
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewChecklistModel(rows, savePath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run checklist: %w", err)
	}
	return nil
}
