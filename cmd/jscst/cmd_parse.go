package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var pretty bool
	var expression bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a JavaScript file and dump its syntax tree",
		Long:  "Parse a JavaScript file and dump its syntax tree. Use - to read from standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			var data []byte
			var err error
			if filename == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
				filename = "<stdin>"
			} else {
				data, err = os.ReadFile(filename)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			var res *parser.Result
			if expression {
				res = parser.ParseExpression(data, parser.WithFile(filename))
			} else {
				res = parser.ParseBytes(data, parser.WithFile(filename))
			}

			if err := writeTree(cmd.OutOrStdout(), res, outputFormat, pretty); err != nil {
				return err
			}
			return diag.RenderAll(cmd.ErrOrStderr(), filename, data, res.Diagnostics())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "colourise and indent json output")
	cmd.Flags().BoolVarP(&expression, "expression", "e", false, "parse the input as a single expression")

	return cmd
}

func writeTree(w io.Writer, res *parser.Result, outputFormat string, pretty bool) error {
	switch outputFormat {
	case "tree":
		_, err := io.WriteString(w, res.Syntax().String())
		return err
	case "json":
		data, err := json.Marshal(res.Syntax())
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		if pretty {
			data, err = prettyjson.Format(data)
			if err != nil {
				return fmt.Errorf("format json: %w", err)
			}
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}
