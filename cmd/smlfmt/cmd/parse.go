package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-smlfmt/smlfmt/internal/errors"
	"github.com/go-smlfmt/smlfmt/internal/lexer"
	"github.com/go-smlfmt/smlfmt/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEval    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Standard ML source and display its AST",
	Long: `Parse Standard ML source code and report the resulting top-level
declaration count, or the full AST structure with --dump-ast.

If no file is given, reads from stdin. -e parses inline source given on the
command line as a whole program of top-level declarations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	name, src, err := readLexParseInput(parseEval, args)
	if err != nil {
		return err
	}

	lexResult := lexer.Lex(name, src)
	if lexResult.Err != nil {
		fmt.Fprint(os.Stderr, errors.New(lexResult.Err, src).Format(false))
		return fmt.Errorf("lexing failed")
	}

	parseResult := parser.Parse(lexResult.Tokens)
	if parseResult.Err != nil {
		fmt.Fprint(os.Stderr, errors.New(parseResult.Err, src).Format(false))
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		spew.Dump(parseResult.Ast)
		return nil
	}
	fmt.Printf("parsed %d top-level declaration(s)\n", len(parseResult.Ast.Items))
	return nil
}
