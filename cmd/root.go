// Package cmd provides the root command and CLI setup for contractfind.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/contractfind/internal/adapter"
	"github.com/mouse-blink/contractfind/internal/config"
	"github.com/mouse-blink/contractfind/internal/controller"
	"github.com/mouse-blink/contractfind/internal/domain"
	"github.com/mouse-blink/contractfind/internal/logging"
)

var (
	baseDirFlag   string
	configFlag    string
	dirFlag       string
	codesFlag     string
	reportFlag    string
	elementFlag   string
	extFlag       string
	verboseFlag   bool
	logFormatFlag string
	plainFlag     bool
)

var logger = zap.NewNop()

// workflowFactory is swapped out in tests.
var workflowFactory = newWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contractfind",
		Short: "Find contract codes in a tree of XML documents",
		Long: `contractfind reads target codes from codes_file.txt (one per line) and
searches every *.xml file below its own directory for ContractCode elements
whose text equals one of them. Each hit is written to results.txt as

  Файл: <path>, ContractCode найден: <code>

All paths default to the directory holding the executable, not the current
working directory. They can be changed with a contractfind.yaml|toml|json file
next to the binary, CONTRACTFIND_* environment variables, or flags.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			logger, err = logging.New(logging.Options{Verbose: verboseFlag, Format: logFormatFlag})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{
				BaseDir:    baseDirFlag,
				ConfigPath: configFlag,
				Flags:      flagOverrides(cmd),
			})
			if err != nil {
				return err
			}

			logger.Debug("configuration resolved",
				zap.String("base", cfg.BaseDir),
				zap.String("corpus", cfg.CorpusRoot),
				zap.String("codes", cfg.CodesFile),
				zap.String("report", cfg.ReportFile))

			return workflowFactory(cmd, logger).Run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baseDirFlag, "base-dir", "", "directory relative paths are resolved against (default: executable directory)")
	flags.StringVarP(&configFlag, "config", "c", "", "config file (yaml, toml or json)")
	flags.StringVarP(&dirFlag, "dir", "d", "", "directory tree to scan (default: base directory)")
	flags.StringVar(&codesFlag, "codes", "", "file with target codes, one per line (default: codes_file.txt)")
	flags.StringVarP(&reportFlag, "report", "o", "", "report file, truncated at start (default: results.txt)")
	flags.StringVar(&elementFlag, "element", "", "local name of the code elements (default: ContractCode)")
	flags.StringVar(&extFlag, "ext", "", "extension of scanned files, case-insensitive (default: .xml)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log debug traces to stderr")
	flags.StringVar(&logFormatFlag, "log-format", "console", "log encoding: console or json")
	flags.BoolVar(&plainFlag, "plain", false, "disable coloured output")

	return cmd
}

func flagOverrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides

	pick := func(name string, value *string) *string {
		if cmd.Flags().Changed(name) {
			return value
		}

		return nil
	}

	o.CorpusRoot = pick("dir", &dirFlag)
	o.CodesFile = pick("codes", &codesFlag)
	o.ReportFile = pick("report", &reportFlag)
	o.Element = pick("element", &elementFlag)
	o.Extension = pick("ext", &extFlag)

	return o
}

func newWorkflow(cmd *cobra.Command, log *zap.Logger) domain.Workflow {
	ui := controller.NewUI(cmd, !plainFlag && controller.IsTTY(cmd.OutOrStdout()))

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	reports := adapter.NewReportStore()
	loader := domain.NewCodeLoader(fsAdapter, ui, log)
	scanner := domain.NewScanner(fsAdapter, adapter.NewLocalXMLFileAdapter(), reports, ui, log)

	return domain.NewWorkflow(fsAdapter, reports, ui, loader, scanner, log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
