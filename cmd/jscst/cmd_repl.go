package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/parser"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse JavaScript interactively and print the syntax tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

type replSession struct {
	format     string
	expression bool
	pending    strings.Builder
}

func runRepl() error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".jscst_history")
	}

	prompt := color.GreenString("js> ")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "jscst %s (:help for commands, Ctrl+D to quit)\n", version)

	s := &replSession{format: "tree"}
	for {
		if s.pending.Len() > 0 {
			rl.SetPrompt(color.HiBlackString("... "))
		} else {
			rl.SetPrompt(prompt)
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			s.pending.Reset()
			continue
		}
		if err != nil {
			return nil
		}
		if s.pending.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			if quit := s.command(rl.Stdout(), strings.TrimSpace(line)); quit {
				return nil
			}
			continue
		}
		s.input(rl.Stdout(), line)
	}
}

// command runs a colon command and reports whether the session should end.
func (s *replSession) command(w io.Writer, line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":tree":
		s.format = "tree"
	case ":json":
		s.format = "json"
	case ":expr":
		s.expression = !s.expression
		fmt.Fprintf(w, "expression mode: %v\n", s.expression)
	case ":help":
		fmt.Fprintln(w, ":tree  print syntax trees")
		fmt.Fprintln(w, ":json  print syntax trees as json")
		fmt.Fprintln(w, ":expr  toggle parsing a single expression")
		fmt.Fprintln(w, ":quit  leave")
	default:
		fmt.Fprintf(w, "unknown command %s\n", line)
	}
	return false
}

// input adds line to the pending source. The source is printed once it no
// longer ends in the middle of a construct.
func (s *replSession) input(w io.Writer, line string) {
	if s.pending.Len() > 0 {
		s.pending.WriteByte('\n')
	}
	s.pending.WriteString(line)
	src := []byte(s.pending.String())

	var res *parser.Result
	if s.expression {
		res = parser.ParseExpression(src, parser.WithFile("<repl>"))
	} else {
		res = parser.ParseBytes(src, parser.WithFile("<repl>"))
	}
	if incomplete(res) && strings.TrimSpace(line) != "" {
		return
	}
	s.pending.Reset()

	if err := writeTree(w, res, s.format, s.format == "json"); err != nil {
		fmt.Fprintln(w, err)
	}
	if err := diag.RenderAll(w, "<repl>", src, res.Diagnostics()); err != nil {
		fmt.Fprintln(w, err)
	}
}

// incomplete reports whether parsing stopped because the input ran out,
// such as an unclosed block or call.
func incomplete(res *parser.Result) bool {
	for _, d := range res.Diagnostics() {
		if d.Code == diag.CodeExpected && strings.HasSuffix(d.Message, "the file ends") {
			return true
		}
	}
	return false
}
