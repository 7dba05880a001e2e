package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/batch"
	"github.com/go-smlfmt/smlfmt/internal/errors"
	"github.com/go-smlfmt/smlfmt/pkg/smlfmt"
	"github.com/spf13/cobra"
)

var (
	fmtForce       bool
	fmtPreview     bool
	fmtPreviewOnly bool
	fmtList        bool
	fmtDiff        bool
	fmtWrite       bool
	fmtRecursive   bool
	fmtPathVars    []string
	fmtRibbonFrac  float64
	fmtMaxWidth    int
	fmtIndentWidth int
	fmtTabWidth    int
	fmtWorkers     int
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files, directories, or .mlb manifests...]",
	Short: "Format Standard ML source files",
	Long: `Format Standard ML source files using the AST-driven pretty-printer.

By default fmt formats the files named on the command line and writes the
result to standard output. If no path is provided, it reads from stdin.
An .mlb build manifest is expanded into its referenced .sml/.sig/.fun
files before formatting.

Examples:
  smlfmt fmt fib.sml              # Format to stdout
  smlfmt fmt -w fib.sml           # Overwrite the file
  smlfmt fmt -l -r src/           # List files that need formatting
  smlfmt fmt -d fib.sml           # Show a diff of the changes
  smlfmt fmt sources.mlb          # Format every file the manifest lists`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtForce, "force", false, "suppress overwrite confirmation")
	fmtCmd.Flags().BoolVar(&fmtPreview, "preview", false, "also write formatted output to stdout")
	fmtCmd.Flags().BoolVar(&fmtPreviewOnly, "preview-only", false, "write only to stdout, never to disk")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display diffs instead of rewriting files")
	fmtCmd.Flags().BoolVarP(&fmtRecursive, "recursive", "r", false, "process directories recursively")
	fmtCmd.Flags().StringArrayVar(&fmtPathVars, "mlb-path-var", nil, `"NAME VALUE" substitution for $(NAME) inside manifests, may be repeated`)
	fmtCmd.Flags().Float64Var(&fmtRibbonFrac, "ribbon-frac", 1.0, "fraction of max-width usable before a group breaks, in (0,1]")
	fmtCmd.Flags().IntVar(&fmtMaxWidth, "max-width", 80, "target maximum line width")
	fmtCmd.Flags().IntVar(&fmtIndentWidth, "indent-width", 2, "spaces per indentation level")
	fmtCmd.Flags().IntVar(&fmtTabWidth, "tab-width", 4, "columns a tab occupies when measuring string/comment text")
	fmtCmd.Flags().IntVar(&fmtWorkers, "workers", 4, "maximum concurrent files when formatting more than one")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtPreviewOnly && fmtForce {
		return fmt.Errorf("cannot use --preview-only and --force together")
	}
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	cfg := smlfmt.Config{
		MaxWidth:    fmtMaxWidth,
		RibbonFrac:  fmtRibbonFrac,
		IndentWidth: fmtIndentWidth,
		TabWidth:    fmtTabWidth,
	}

	if len(args) == 0 {
		return formatStdin(cfg)
	}

	pathVars, err := parsePathVars(fmtPathVars)
	if err != nil {
		return err
	}

	paths, err := expandPaths(args, pathVars)
	if err != nil {
		return err
	}

	jobs := make([]batch.Job, len(paths))
	for i, path := range paths {
		path := path
		jobs[i] = batch.Job{Path: path, Run: func() (string, error) {
			return smlfmt.FormatFile(path, cfg)
		}}
	}

	hasErrors := false
	for _, out := range batch.Run(jobs, fmtWorkers) {
		if out.Err != nil {
			reportFormatError(out.Path, out.Err)
			hasErrors = true
			continue
		}
		if err := handleFormatted(out.Path, out.Output); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out.Path, err)
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func reportFormatError(path string, err error) {
	if f, ok := err.(*errors.Formatted); ok {
		fmt.Fprintf(os.Stderr, "%s: %s", path, f.Format(false))
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
}

// parsePathVars turns repeated "NAME VALUE" flag values into a map.
func parsePathVars(raw []string) (map[string]string, error) {
	vars := make(map[string]string, len(raw))
	for _, entry := range raw {
		parts := strings.SplitN(entry, " ", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid -mlb-path-var %q, expected \"NAME VALUE\"", entry)
		}
		vars[parts[0]] = parts[1]
	}
	return vars, nil
}

// expandPaths resolves each argument: directories expand via
// collectDirFiles when -r is set, .mlb manifests expand via the manifest
// enumerator, everything else passes through unchanged.
func expandPaths(args []string, pathVars map[string]string) ([]string, error) {
	var out []string
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		switch {
		case info.IsDir():
			if !fmtRecursive {
				return nil, fmt.Errorf("%s is a directory (use -r to process recursively)", path)
			}
			dirPaths, err := collectDirFiles(path)
			if err != nil {
				return nil, err
			}
			out = append(out, dirPaths...)
		case strings.HasSuffix(path, ".mlb"):
			mlbPaths, err := expandManifest(path, pathVars)
			if err != nil {
				return nil, err
			}
			out = append(out, mlbPaths...)
		default:
			out = append(out, path)
		}
	}
	return out, nil
}

func collectDirFiles(dir string) ([]string, error) {
	var out []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if isSourceExt(path) {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func isSourceExt(path string) bool {
	switch filepath.Ext(path) {
	case ".sml", ".sig", ".fun":
		return true
	default:
		return false
	}
}

// formatStdin reads stdin, formats it, and writes to stdout.
func formatStdin(cfg smlfmt.Config) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	out, err := smlfmt.Format("<stdin>", string(src), cfg)
	if err != nil {
		if f, ok := err.(*errors.Formatted); ok {
			return fmt.Errorf("%s", f.Format(false))
		}
		return err
	}
	fmt.Print(out)
	return nil
}

// handleFormatted applies the selected output mode (-l/-d/-w/--preview*/
// default stdout) to one file's formatted result.
func handleFormatted(path, formatted string) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	changed := string(original) != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", path)
			fmt.Printf("+++ %s (formatted)\n", path)
			showDiff(string(original), formatted)
		}
	case fmtPreviewOnly:
		fmt.Print(formatted)
	case fmtWrite:
		if changed {
			if err := writeBack(path, formatted); err != nil {
				return err
			}
		}
		if fmtPreview {
			fmt.Print(formatted)
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

func writeBack(path, formatted string) error {
	if !fmtForce {
		fmt.Fprintf(os.Stderr, "overwrite %s? use --force to skip this check\n", path)
		return fmt.Errorf("refusing to overwrite %s without --force", path)
	}
	return os.WriteFile(path, []byte(formatted), 0o644)
}

// showDiff shows a simple line-by-line diff.
func showDiff(original, formatted string) {
	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	maxLines := len(origLines)
	if len(fmtLines) > maxLines {
		maxLines = len(fmtLines)
	}

	for i := 0; i < maxLines; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}
		if origLine != fmtLine {
			if origLine != "" {
				fmt.Printf("- %s\n", origLine)
			}
			if fmtLine != "" {
				fmt.Printf("+ %s\n", fmtLine)
			}
		}
	}
}
