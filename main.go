package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/config"
	"github.com/aaronzipp/sus-math/internal/console"
	"github.com/aaronzipp/sus-math/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	seed       uint64
	todoFile   string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sus",
	Short: "Among Us: Math Edition, plus a calculator and a to-do list",
	Long: `sus bundles three small terminal tools:

  game  pass-and-play social deduction where crewmates solve math tasks
  calc  a four-function calculator
  todo  a persistent to-do list

Settings are read from sus.yaml (see --config), a .env file and SUS_* variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("seed") {
			loaded.Game.Seed = seed
		}
		if todoFile != "" {
			loaded.Todo.Path = todoFile
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("Config loaded", zap.String("path", configPath), zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed for roles and questions (0 = random)")
	rootCmd.PersistentFlags().StringVar(&todoFile, "todo-file", "", "To-do list file (overrides config)")

	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(todoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newConsole builds a console over the command's streams
func newConsole(cmd *cobra.Command) (*console.Context, error) {
	return console.NewContext(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger)
}
