package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/parser"
	"github.com/dhamidi/jscst/workspace"
)

var checkLog = commonlog.GetLogger("jscst.check")

func newCheckCmd() *cobra.Command {
	var jobs int
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Parse JavaScript files and report syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = cfg.CheckJobs
			}
			if !cmd.Flags().Changed("interval") {
				interval = cfg.WatchInterval
			}

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return watchFiles(ctx, cmd.OutOrStdout(), args, interval)
			}

			paths, err := workspace.SourceFiles(args...)
			if err != nil {
				return err
			}
			summary, err := checkFiles(cmd.Context(), cmd.OutOrStdout(), paths, jobs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			if summary.FilesWithErrors > 0 {
				return fmt.Errorf("%d of %d files have syntax errors", summary.FilesWithErrors, summary.Files)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of files parsed concurrently")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check files when they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval in watch mode")

	return cmd
}

type checkSummary struct {
	Files           int
	FilesWithErrors int
	Errors          int
	Warnings        int
}

func (s checkSummary) String() string {
	return fmt.Sprintf("checked %d files: %d errors, %d warnings", s.Files, s.Errors, s.Warnings)
}

func (s *checkSummary) add(res *parser.Result) {
	s.Files++
	for _, d := range res.Diagnostics() {
		if d.Severity == diag.Error {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
	if res.HasErrors() {
		s.FilesWithErrors++
	}
}

// checkFiles parses paths with at most jobs parsers at a time and renders the
// diagnostics in the order of paths.
func checkFiles(ctx context.Context, w io.Writer, paths []string, jobs int) (checkSummary, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]*parser.Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			results[i] = parser.ParseBytes(data, parser.WithFile(path))
			checkLog.Debugf("checked %s", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return checkSummary{}, err
	}

	var summary checkSummary
	for i, res := range results {
		summary.add(res)
		if err := diag.RenderAll(w, paths[i], res.Source(), res.Diagnostics()); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func watchFiles(ctx context.Context, w io.Writer, roots []string, interval time.Duration) error {
	ws := workspace.New(".")
	fw := workspace.NewFileWatcher(ws, roots, interval, func(changes []workspace.Change) {
		for _, c := range changes {
			if c.Removed {
				fmt.Fprintf(w, "%s: removed\n", c.Path)
				continue
			}
			f := ws.GetFile(c.Path)
			if f == nil {
				continue
			}
			if len(f.Result.Diagnostics()) == 0 {
				fmt.Fprintf(w, "%s: ok\n", c.Path)
				continue
			}
			if err := diag.RenderAll(w, c.Path, f.Result.Source(), f.Result.Diagnostics()); err != nil {
				checkLog.Errorf("render %s: %s", c.Path, err)
			}
		}
	})
	checkLog.Infof("watching %v every %s", roots, interval)
	err := fw.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}
