package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-smlfmt/smlfmt/internal/manifest"
	"github.com/spf13/cobra"
)

var manifestPathVars []string

var manifestCmd = &cobra.Command{
	Use:   "manifest <file.mlb>",
	Short: "List the source files referenced by a build manifest",
	Long: `List, in order, every .sml/.sig/.fun path an .mlb build manifest
references, recursively expanding nested manifests and $(VAR) path-variable
substitutions.`,
	Args: cobra.ExactArgs(1),
	RunE: runManifest,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().StringArrayVar(&manifestPathVars, "mlb-path-var", nil, `"NAME VALUE" substitution for $(NAME), may be repeated`)
}

func runManifest(cmd *cobra.Command, args []string) error {
	vars, err := parsePathVars(manifestPathVars)
	if err != nil {
		return err
	}
	paths, err := expandManifest(args[0], vars)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// expandManifest reads path, enumerates its referenced source paths via
// internal/manifest, and recursively expands any nested .mlb reference.
// Paths are resolved relative to the directory containing the manifest
// that referenced them, matching how the build-manifest language resolves
// relative paths (spec.md §6).
func expandManifest(path string, vars map[string]string) ([]string, error) {
	return expandManifestRec(path, vars, make(map[string]bool))
}

func expandManifestRec(path string, vars map[string]string, visited map[string]bool) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if visited[abs] {
		return nil, fmt.Errorf("manifest: cyclic reference to %s", path)
	}
	visited[abs] = true

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result := manifest.Parse(string(src), vars)
	if result.Err != nil {
		return nil, fmt.Errorf("%s: %w", path, result.Err)
	}

	dir := filepath.Dir(path)
	var out []string
	for _, ref := range result.Paths {
		resolved := ref
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		if filepath.Ext(resolved) == ".mlb" {
			nested, err := expandManifestRec(resolved, vars, visited)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		}
		out = append(out, resolved)
	}
	return out, nil
}
