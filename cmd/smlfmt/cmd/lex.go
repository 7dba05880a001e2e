package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-smlfmt/smlfmt/internal/errors"
	"github.com/go-smlfmt/smlfmt/internal/lexer"
	"github.com/go-smlfmt/smlfmt/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval     string
	lexShowPos  bool
	lexShowKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Standard ML file or expression",
	Long: `Tokenize (lex) a Standard ML source buffer and print the resulting
tokens, one per line. Useful for debugging the lexer.

If no file is given, reads from stdin. -e tokenizes inline source instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's position")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show each token's kind name")
}

func runLex(cmd *cobra.Command, args []string) error {
	name, src, err := readLexParseInput(lexEval, args)
	if err != nil {
		return err
	}

	result := lexer.Lex(name, src)
	for _, t := range result.Tokens {
		printToken(t)
	}
	if result.Err != nil {
		fmt.Fprint(os.Stderr, errors.New(result.Err, src).Format(false))
		return fmt.Errorf("lexing failed")
	}
	return nil
}

func printToken(t token.Token) {
	out := ""
	if lexShowKind {
		out += fmt.Sprintf("[%-12s]", t.Kind)
	}
	if t.Kind == token.EOF {
		out += " EOF"
	} else {
		out += fmt.Sprintf(" %q", t.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%s", t.Span.Start)
	}
	fmt.Println(out)
}

// readLexParseInput resolves the shared input convention for lex/parse: an
// -e/eval string, a file argument, or stdin, in that order.
func readLexParseInput(eval string, args []string) (name, src string, err error) {
	switch {
	case eval != "":
		return "<eval>", eval, nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return args[0], string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
}
