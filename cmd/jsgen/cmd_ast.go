package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jscst/internal/astgen"
)

func newAstCmd() *cobra.Command {
	var opts astOptions

	cmd := &cobra.Command{
		Use:   "ast",
		Short: "Generate typed syntax nodes from an EBNF grammar",
		Long: `Generate typed syntax nodes from an EBNF grammar.

With --check the grammar is only parsed, verified from JsRoot and turned into
the node model; every problem is printed on its own line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAst(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.grammar, "grammar", "g", "js.ebnf", "EBNF grammar file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.pkg, "package", "ast", "package name of the generated file")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify the grammar and print a summary instead of generating")

	return cmd
}

type astOptions struct {
	grammar string
	output  string
	pkg     string
	check   bool
}

func runAst(w io.Writer, opts astOptions) error {
	f, err := os.Open(opts.grammar)
	if err != nil {
		return fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := astgen.Load(opts.grammar, f)
	if err != nil {
		for _, line := range errorLines(err) {
			fmt.Fprintln(w, line)
		}
		return fmt.Errorf("load grammar: %w", err)
	}

	if opts.check {
		fmt.Fprintf(w, "%s: %d nodes, %d unions\n", opts.grammar, len(g.Nodes()), len(g.Unions()))
		return nil
	}

	var buf bytes.Buffer
	if err := astgen.Generate(&buf, g, astgen.Options{Package: opts.pkg}); err != nil {
		return err
	}

	if opts.output == "" || opts.output == "-" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// errorLines splits joined errors and the error lists of the ebnf package
// into one message each.
func errorLines(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, errorLines(e)...)
		}
		return lines
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []string{err.Error()}
	}
	lines := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		lines = append(lines, fmt.Sprint(v.Index(i).Interface()))
	}
	return lines
}
