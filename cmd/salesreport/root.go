package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"supermart/internal/config"
	"supermart/internal/logger"
	"supermart/internal/report"
	"supermart/internal/service/excel"
	"supermart/internal/version"
)

type reportOptions struct {
	configPath string
	file       string
	format     string
	verbose    bool
}

// NewRootCmd 创建 salesreport 根命令
func NewRootCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "salesreport",
		Short: "Print a supermarket sales workbook as a table",
		Long: `salesreport reads every row of the active sheet of a sales workbook
and prints it as a fixed-width text table (or Markdown with --format markdown),
followed by the number of sales records.`,
		Version:       version.Get(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config.toml")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Workbook to read")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text or markdown")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(version.NewCommand("salesreport"))

	return cmd
}

// Execute 执行根命令
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Data.File = opts.file
	}
	if flags.Changed("format") {
		cfg.Report.Format = opts.format
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if cfg.Data.File == "" {
		return config.ErrEmptyFile
	}

	renderer, err := report.New(cfg.Report.Format, cfg.Report.Title)
	if err != nil {
		return err
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
		ServiceName: "salesreport",
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.GetLogger()

	p := excel.NewParser()
	if err := p.LoadFile(cfg.Data.File); err != nil {
		if errors.Is(err, excel.ErrNotFound) {
			return fmt.Errorf("%w (run salesgen first)", err)
		}
		return err
	}
	defer func() { _ = p.Close() }()

	rows, err := p.Rows()
	if err != nil {
		return err
	}
	log.Info("workbook loaded",
		zap.String("path", cfg.Data.File),
		zap.String("sheet", p.SheetName()),
		zap.String("identifier", p.Identifier()),
		zap.Int("rows", len(rows)),
	)
	if report.IsEmpty(rows) {
		log.Warn("workbook has no data rows", zap.String("path", cfg.Data.File))
	}

	return renderer.Write(cmd.OutOrStdout(), rows)
}
