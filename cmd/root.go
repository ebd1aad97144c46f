package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/slserpent/flac-directory/internal/app"
	"github.com/slserpent/flac-directory/internal/stats"
	"github.com/spf13/cobra"
)

type runFlags struct {
	recursive  bool
	delete     bool
	toWAV      bool
	overwrite  bool
	ffmpegPath string
	verbose    bool
}

func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(os.Args[1:])
	return root.Execute()
}

func NewRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	flags := &runFlags{}
	showVersion := false

	root := &cobra.Command{
		Use:           "flac-directory [flags] input_dir",
		Short:         "Batch-convert WAV files in a directory to FLAC (or back) with ffmpeg",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runConvert(stdout, stderr, flags, &showVersion),
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true

	root.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "recursively process subdirectories")
	root.Flags().BoolVarP(&flags.delete, "delete", "d", false, "delete original files after successful conversion")
	root.Flags().BoolVarP(&flags.toWAV, "to-wav", "w", false, "convert FLAC to WAV instead of WAV to FLAC")
	root.Flags().BoolVarP(&flags.overwrite, "overwrite", "o", false, "overwrite existing files")
	root.Flags().StringVar(&flags.ffmpegPath, "ffmpeg-path", "", "path to the ffmpeg executable")
	root.Flags().BoolVar(&flags.verbose, "verbose", false, "pass ffmpeg output through")
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "show version information")

	versionCmd := &cobra.Command{
		Use:           "version",
		Short:         "Show version information",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

func runConvert(stdout io.Writer, stderr io.Writer, flags *runFlags, showVersion *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if showVersion != nil && *showVersion {
			printVersion(stdout)
			return nil
		}
		if len(args) == 0 {
			_ = cmd.Help()
			return errUsage
		}

		res, err := app.Run(app.Options{
			InputDir:   args[0],
			Recursive:  flags.recursive,
			Delete:     flags.delete,
			ToWAV:      flags.toWAV,
			Overwrite:  flags.overwrite,
			FFmpegPath: flags.ffmpegPath,
			Verbose:    flags.verbose,
			Log:        stdout,
		})
		if err != nil {
			return err
		}

		for _, w := range res.Warnings {
			fmt.Fprintf(stderr, "warn: %s\n", w)
		}

		// Per-file failures were already reported as they happened and do not
		// change the exit status; the batch is best effort.
		printSummary(stdout, res)
		return nil
	}
}

func printSummary(w io.Writer, res app.Result) {
	fmt.Fprintf(w, "\nConversion Summary:\n")
	fmt.Fprintf(w, "  Converted: %d\n", res.Converted)
	fmt.Fprintf(w, "  Skipped: %d\n", res.Skipped)
	fmt.Fprintf(w, "  Errors: %d\n", res.Failed)
	fmt.Fprintf(w, "  Total: %d\n", res.Total)
	fmt.Fprintf(w, "  Execution time: %s\n", stats.FormatDuration(res.Elapsed))

	if res.Stats.Files == 0 {
		return
	}

	st := res.Stats
	saved := st.SpaceSaved()
	verb, pctWord := "saved", "savings"
	if saved < 0 {
		verb, pctWord = "increased", "increase"
		saved = -saved
	}
	pct := (1 - st.Ratio()) * 100
	if pct < 0 {
		pct = -pct
	}

	fmt.Fprintf(w, "\nCompression Statistics:\n")
	fmt.Fprintf(w, "  Total original size: %s\n", stats.FormatSize(st.OriginalBytes))
	fmt.Fprintf(w, "  Total converted size: %s\n", stats.FormatSize(st.ConvertedBytes))
	fmt.Fprintf(w, "  Space %s: %s\n", verb, stats.FormatSize(saved))
	fmt.Fprintf(w, "  Compression ratio: %.2f (%.1f%% %s)\n", st.Ratio(), pct, pctWord)
}
