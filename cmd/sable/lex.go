package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sable-lang/sable/pkg/compiler/lexer"
)

var (
	lexSpew   bool
	lexTrivia bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream of a Sable source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().BoolVar(&lexSpew, "spew", false, "dump raw token structs")
	lexCmd.Flags().BoolVar(&lexTrivia, "trivia", false, "include whitespace tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	src := string(data)

	log.WithFields(logrus.Fields{
		"subsys": "lex",
		"file":   path,
		"bytes":  len(src),
	}).Debug("lexing source")

	kindColor := color.New(color.FgCyan)
	l := lexer.New(src)
	for {
		tok, err := l.Next()
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			line, col := lexer.LineCol(src, lexErr.Span.Start)
			return fmt.Errorf("%s:%d:%d: %w", path, line, col, err)
		}
		if err != nil {
			return err
		}
		if tok.Kind == lexer.KindEOF {
			return nil
		}
		if tok.Kind == lexer.KindWhitespace && !lexTrivia {
			continue
		}
		if lexSpew {
			spew.Fdump(cmd.OutOrStdout(), tok)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%5d..%-5d %s %q\n",
			tok.Span.Start, tok.Span.End, kindColor.Sprintf("%-10s", tok.Kind), tok.Lexeme)
	}
}
