package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vcxgen/vcxgen/internal/generator"
	"github.com/vcxgen/vcxgen/internal/manifest"
	"github.com/vcxgen/vcxgen/internal/output"
	"github.com/vcxgen/vcxgen/internal/vcxproj"
)

type generateOptions struct {
	dryRun       bool
	diff         bool
	outputPath   string
	manifestPath string
}

// GenerateCmd creates and returns the 'generate' command.
func GenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the project descriptor",
		Long: `Generate the monolithic .vcxproj descriptor.

Source groups come from vcxgen.yml when present, otherwise from the
built-in hlffi set: wrapper code, HashLink VM core, standard library,
PCRE2, plugin wrappers, libuv, and mbedtls. Missing vendor trees are
tolerated and contribute empty groups.

Examples:
  vcxgen generate
  vcxgen generate --dry-run
  vcxgen generate --diff
  vcxgen generate --output build/hlffi_monolithic.vcxproj`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runGenerate(cmd.Context(), opts); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would be written without writing")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show changes against the existing descriptor before writing")
	cmd.Flags().StringVar(&opts.outputPath, "output", "", "Output file path (overrides manifest and default)")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "Manifest file path (default: vcxgen.yml if present)")

	return cmd
}

func runGenerate(ctx context.Context, opts generateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings := vcxproj.DefaultSettings()
	specs := vcxproj.DefaultGroups()

	manifestPath := opts.manifestPath
	if manifestPath == "" && manifest.Detect(".") {
		manifestPath = manifest.FileName
	}
	if manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		output.Verbose(fmt.Sprintf("Using manifest: %s", manifestPath))
		settings = vcxproj.ResolveSettings(m.Settings)
		if len(m.Groups) > 0 {
			specs = m.Groups
		}
	}
	if opts.outputPath != "" {
		settings.Output = opts.outputPath
	}

	gen := vcxproj.New(settings, specs)

	groups, err := gen.BuildGroups()
	if err != nil {
		return err
	}

	content, err := gen.Render(groups)
	if err != nil {
		return err
	}

	if opts.diff {
		existing, err := os.ReadFile(settings.Output)
		switch {
		case err == nil:
			if d := generator.Diff(settings.Output, settings.Output+" (generated)", existing, content); d != "" {
				fmt.Print(d)
			} else {
				output.Info("No changes against the existing descriptor.")
			}
		case os.IsNotExist(err):
			output.Info("No existing descriptor to diff against.")
		default:
			return fmt.Errorf("reading existing descriptor: %w", err)
		}
	}

	op := &generator.ReplaceFileOp{
		Path:    settings.Output,
		Content: content,
		Mode:    0644,
	}

	if err := generator.Execute(ctx, []generator.Operation{op}, generator.ExecuteOptions{DryRun: opts.dryRun}); err != nil {
		return err
	}

	printSummary(settings, groups, opts.dryRun)
	return nil
}

func printSummary(settings manifest.Settings, groups []vcxproj.SourceGroup, dryRun bool) {
	if !dryRun {
		output.Success(fmt.Sprintf("Generated %s", settings.Output))
	}

	output.Info(fmt.Sprintf("Total source files: %d", vcxproj.TotalFiles(groups)))
	for _, g := range groups {
		output.Step(fmt.Sprintf("%s: %d files", g.Name, len(g.Files)))
	}

	if settings.FinalName != "" && settings.FinalName != settings.Output {
		output.Info("To use:")
		output.Step(fmt.Sprintf("mv %s %s", settings.Output, settings.FinalName))
	}
}
