package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/biz"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/data"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/pkg/logger"
)

type options struct {
	paths    []string
	sheet    string
	logLevel string
}

// fileRepo 直接读取表格的仓库实现，命令行只加载一次
type fileRepo struct {
	table *domain.Table
}

func (r *fileRepo) Table(context.Context) (*domain.Table, error) { return r.table, nil }

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "inspect",
		Short:         "Inspect the macro risk indicator workbook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.InitLogger(opts.logLevel, "")
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringSliceVar(&opts.paths, "workbook", nil, "workbook paths to try in order (default: built-in search path)")
	root.PersistentFlags().StringVar(&opts.sheet, "sheet", "comp", "sheet holding the indicator data")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	root.AddCommand(datesCmd(opts), tableCmd(opts), checkCmd(opts))
	return root
}

func load(opts *options) (*domain.Table, error) {
	paths := opts.paths
	if len(paths) == 0 {
		paths = data.DefaultPaths()
	}
	path, err := data.ResolveWorkbook(paths)
	if err != nil {
		return nil, err
	}
	logger.Log.Infof("找到文件路径: %s", path)
	return data.LoadWorkbook(path, opts.sheet)
}

func newUseCase(table *domain.Table) *biz.QuadrantUseCase {
	return biz.NewQuadrantUseCase(&fileRepo{table: table}, logger.NewKratosLogger(logger.Log))
}

func datesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List the distinct dates in the workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := load(opts)
			if err != nil {
				return err
			}
			dates, latest, err := newUseCase(table).Dates(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range dates {
				mark := ""
				if d.Equal(latest) {
					mark = " (latest)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", d.Format(domain.DateLayout), mark)
			}
			return nil
		},
	}
}

func tableCmd(opts *options) *cobra.Command {
	var (
		date      string
		threshold float64
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the risk detail table for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var day time.Time
			if date != "" {
				t, err := time.Parse(domain.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
				}
				day = t
			}

			table, err := load(opts)
			if err != nil {
				return err
			}
			snap, err := newUseCase(table).Snapshot(cmd.Context(), day, threshold)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, snap.Layout.Title)
			tw := tablewriter.NewWriter(w)
			tw.SetHeader([]string{"风险类别", "情绪值", "关注度", "所属象限"})
			for _, r := range snap.Rows {
				tw.Append([]string{
					string(r.Category),
					strconv.FormatFloat(r.Sentiment, 'f', -1, 64),
					strconv.FormatFloat(r.Attention, 'f', -1, 64),
					r.QuadrantLabel(),
				})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to show, YYYY-MM-DD (default: most recent)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.3, "attention threshold in [0, 1]")
	return cmd
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the workbook schema and values",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := load(opts)
			if err != nil {
				return err
			}
			logger.Log.Debugf("workbook %s validated", table.Source)
			fmt.Fprintf(cmd.OutOrStdout(), "OK %s: %d rows, %d dates, latest %s\n",
				table.Source, len(table.Observations), len(table.Dates()), table.Latest().Format(domain.DateLayout))
			return nil
		},
	}
}
