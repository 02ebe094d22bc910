package cmd

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/1adybug/sort-imports/pkg/config"
	"github.com/1adybug/sort-imports/pkg/errors"
	"github.com/1adybug/sort-imports/pkg/transformer"
	"github.com/1adybug/sort-imports/pkg/utils"
	"github.com/1adybug/sort-imports/pkg/version"
)

const (
	UseDescription   = "sort-imports [flags] PATH"
	ShortDescription = "JavaScript/TypeScript import sorter - normalizes the leading import block"
	LongDescription  = `sort-imports is a command-line tool that normalizes the leading block of
import and export-from statements in JavaScript/TypeScript source files.

It merges duplicate-module imports, reorders statements by configurable
grouping rules (external modules, path aliases, relative paths), optionally
removes unused bindings via static usage analysis, and re-serializes the
block while preserving every comment. Code below the import block is never
touched.

PATH can be either a single source file or a directory. When a directory is
specified, all .js/.jsx/.ts/.tsx/.mjs/.cjs/.mts/.cts files (excluding
declaration files and node_modules) are processed recursively.

Settings can also come from a .sortimports.toml file discovered upward from
each processed file; explicit flags take precedence over it.`
)

var (
	inPlace         bool
	removeUnused    bool
	sortSideEffects bool
	separator       string
	configPath      string
	jobs            int
	showVersion     bool
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&inPlace, "in-place", false, "Modify files in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVar(&removeUnused, "remove-unused", false, "Remove import specifiers not referenced by the code below the import block")
	rootCmd.PersistentFlags().BoolVar(&sortSideEffects, "sort-side-effects", false, "Sort side-effect imports like any other statement instead of treating them as boundaries")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", "", "Comment line emitted before each import group")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a .sortimports.toml settings file (disables upward discovery)")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "Number of files processed concurrently")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Println(version.Get().String())
		return nil
	}

	path := args[0]
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if isDir {
		return processDirectory(cmd, path)
	}
	return processFile(cmd, path, true)
}

// options builds the per-file configuration inputs. Only flags the caller
// actually set participate in the precedence merge.
func options(cmd *cobra.Command, target string) config.Options {
	opts := config.Options{ConfigPath: configPath, TargetPath: target}
	if cmd.Flags().Changed("separator") {
		opts.Separator = &separator
	}
	if cmd.Flags().Changed("sort-side-effects") {
		opts.SortSideEffects = &sortSideEffects
	}
	if cmd.Flags().Changed("remove-unused") {
		opts.RemoveUnusedImports = &removeUnused
	}
	return opts
}

func processFile(cmd *cobra.Command, path string, verbose bool) error {
	cfg, err := config.Resolve(options(cmd, path))
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	output, err := transformer.TransformChecked(string(src), cfg)
	if err != nil {
		// the transform recovered and returned the source untouched
		color.Yellow(errors.InfoMsgErrorProcessing, path, err)
	}

	if inPlace {
		if output == string(src) {
			return nil
		}
		if writeErr := os.WriteFile(path, []byte(output), 0644); writeErr != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, writeErr)
		}
		return nil
	}
	if verbose {
		fmt.Print(output)
	}
	return nil
}

func processDirectory(cmd *cobra.Command, path string) error {
	if !inPlace {
		fmt.Println(errors.WarnMsgProcessingDirWithoutInPlace)
		fmt.Println(errors.InfoMsgUseInPlaceFlag)
		fmt.Println()
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}
	if len(files) == 0 {
		fmt.Printf(errors.InfoMsgNoFilesFound+"\n", path)
		return nil
	}
	fmt.Printf(errors.InfoMsgFoundFiles+"\n\n", len(files), path)

	var (
		mu        sync.Mutex
		processed int
		failed    int
	)

	var group errgroup.Group
	group.SetLimit(jobs)
	for _, file := range files {
		file := file
		group.Go(func() error {
			err := processFile(cmd, file, false)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				color.Red(errors.InfoMsgErrorProcessing, file, err)
				failed++
				return nil
			}
			processed++
			if inPlace {
				fmt.Printf(errors.InfoMsgProcessedFiles+"\n", file)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf(errors.InfoMsgProcessedCount, processed)
	if failed > 0 {
		fmt.Printf(errors.InfoMsgErrorCount, failed)
	}
	fmt.Println()

	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
