package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"supermart/internal/config"
	"supermart/internal/logger"
	"supermart/internal/model"
	"supermart/internal/service/excel"
	"supermart/internal/version"
)

type generateOptions struct {
	configPath string
	file       string
	rows       int
	seed       uint64
	verbose    bool
}

// NewRootCmd 创建 salesgen 根命令
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "salesgen",
		Short: "Generate a workbook of synthetic supermarket sales",
		Long: `salesgen fabricates randomized but plausible supermarket sales records
from fixed country and category tables and writes them to an Excel workbook.

Run salesreport afterwards to print the workbook as a table.`,
		Version:       version.Get(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config.toml")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Output workbook path")
	cmd.Flags().IntVarP(&opts.rows, "rows", "n", 0, "Number of records to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = time based)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(version.NewCommand("salesgen"))

	return cmd
}

// Execute 执行根命令
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 命令行参数覆盖配置
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Data.File = opts.file
	}
	if flags.Changed("rows") {
		cfg.Generator.Rows = opts.rows
	}
	if flags.Changed("seed") {
		cfg.Generator.Seed = opts.seed
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
		ServiceName: "salesgen",
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.GetLogger()

	records := excel.NewGenerator(cfg.Generator.Seed).
		Generate(model.DefaultReferenceTables(), cfg.Generator.Rows, cfg.Generator.Year)
	log.Debug("records generated",
		zap.Int("rows", len(records)),
		zap.Int("year", cfg.Generator.Year),
		zap.Uint64("seed", cfg.Generator.Seed),
	)

	res, err := excel.NewExporter(cfg.Generator.SheetName).WriteFile(records, cfg.Data.File)
	if err != nil {
		return err
	}
	log.Info("workbook written",
		zap.String("path", res.Path),
		zap.Int("rows", res.Rows),
		zap.String("identifier", res.Identifier),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Done! '%s' created with %d rows of sales data.\n", res.Path, res.Rows)
	if res.Path == config.DefaultConfig().Data.File {
		fmt.Fprintln(out, "Now run: salesreport")
	} else {
		fmt.Fprintf(out, "Now run: salesreport --file %s\n", res.Path)
	}
	return nil
}
