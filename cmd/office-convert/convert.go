package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/office-convert/internal/convert"
	"github.com/pdiddy/office-convert/internal/journal"
	"github.com/pdiddy/office-convert/internal/runner"
	"github.com/pdiddy/office-convert/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert documents to another format",
	Long: `Convert runs each input file through the soffice binary. The target
format comes from --to (or from the --output extension when converting a
single file). An optional export filter refines how the format is produced,
e.g. --to pdf --filter writer_pdf_Export.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("to", "", "target format extension, e.g. pdf, docx, odt")
	convertCmd.Flags().String("filter", "", "export filter appended to the format token")
	convertCmd.Flags().StringP("output", "o", "", "destination path (single input only)")
	convertCmd.Flags().String("output-dir", ".", "destination directory for converted files")
	convertCmd.Flags().String("binary", "", "explicit path to the soffice binary")
	convertCmd.Flags().String("temp-dir", "", "base directory for per-call work directories")
	convertCmd.Flags().IntP("jobs", "j", 1, "number of conversions to run concurrently")
	convertCmd.Flags().String("journal", "", "SQLite journal file recording conversion history")

	rootCmd.AddCommand(convertCmd)
}

// setting returns the flag value when set, falling back to the viper key.
func setting(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	filter, _ := cmd.Flags().GetString("filter")
	output, _ := cmd.Flags().GetString("output")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs <= 1 && viper.GetInt("convert.jobs") > 1 {
		jobs = viper.GetInt("convert.jobs")
	}

	tasks, err := buildTasks(args, output, outputDir, to, filter)
	if err != nil {
		return err
	}

	c, err := convert.New(setting(cmd, "binary", "convert.binary"))
	if err != nil {
		return err
	}
	if tempDir := setting(cmd, "temp-dir", "convert.temp_dir"); tempDir != "" {
		c.SetTempPath(tempDir)
	}
	if template := viper.GetStringSlice("convert.command"); len(template) > 0 {
		c.SetCommand(template)
	}

	summary := runner.Run(cmd.Context(), jobs, tasks, c, cmd.OutOrStdout())

	if path := setting(cmd, "journal", "journal.path"); path != "" {
		if err := recordResults(cmd, path, summary.Results); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d of %d conversions failed", summary.Failed, summary.Total)
	}
	return nil
}

// buildTasks maps input paths to conversion tasks. With --output exactly one
// input is allowed and the destination extension selects the format; without
// it every input lands in --output-dir with the --to extension.
func buildTasks(inputs []string, output, outputDir, to, filter string) ([]types.Task, error) {
	if output != "" {
		if len(inputs) != 1 {
			return nil, fmt.Errorf("--output takes exactly one input file, got %d", len(inputs))
		}
		return []types.Task{{Source: inputs[0], Destination: output, Filter: filter}}, nil
	}

	if to == "" {
		return nil, fmt.Errorf("--to is required when --output is not given")
	}
	to = strings.TrimPrefix(to, ".")

	tasks := make([]types.Task, len(inputs))
	for i, in := range inputs {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		tasks[i] = types.Task{
			Source:      in,
			Destination: filepath.Join(outputDir, base+"."+to),
			Filter:      filter,
		}
	}
	return tasks, nil
}

func recordResults(cmd *cobra.Command, path string, results []types.Result) error {
	store, err := journal.Open(types.JournalConfig{Path: path, MaxResults: viper.GetInt("journal.max_results")})
	if err != nil {
		return err
	}
	defer store.Close()

	for _, res := range results {
		if err := store.Record(cmd.Context(), res); err != nil {
			return err
		}
	}
	return nil
}
