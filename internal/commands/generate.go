package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	templatebackend "github.com/ekhoroshev/razorgen/backend/template"
	"github.com/ekhoroshev/razorgen/filesystem"
	"github.com/ekhoroshev/razorgen/generator"
	"github.com/ekhoroshev/razorgen/internal/config"
	"github.com/ekhoroshev/razorgen/output"
	"github.com/ekhoroshev/razorgen/project"
)

// GenerateCmd creates and returns the 'generate' command.
func GenerateCmd() *cobra.Command {
	var manifestPath, cacheDir, rootNamespace, projectRoot, namespace string

	cmd := &cobra.Command{
		Use:   "generate [templates...]",
		Short: "Regenerate stale templates",
		Long: `Generate Go source from template files.

With no arguments, every template under the project root is considered.
Pass file paths to process a specific batch, or --manifest to drive the
batch from a YAML file:

  files:
    - path: Views/Home/Index.tmpl
    - path: Views/Shared/Layout.tmpl
      namespace: My.Override

A template is only regenerated when it is newer than its generated output,
so repeated runs are cheap.

Examples:
  razorgen generate
  razorgen generate Views/Home/Index.tmpl
  razorgen generate --manifest views.yml
  razorgen generate Views/Home/Index.tmpl --namespace My.Override`,
		Run: func(cmd *cobra.Command, args []string) {
			root, err := resolveProjectRoot(projectRoot)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to resolve project root: %v", err))
				os.Exit(1)
			}
			output.Verbose("Project root: " + root)

			cfg, err := config.Load(root)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to load razorgen.yml: %v", err))
				os.Exit(1)
			}
			if cacheDir != "" {
				cfg.CacheDir = cacheDir
				if !filepath.IsAbs(cfg.CacheDir) {
					cfg.CacheDir = filepath.Join(root, cfg.CacheDir)
				}
			}
			if rootNamespace != "" {
				cfg.RootNamespace = rootNamespace
			}
			if cfg.RootNamespace == "" {
				// Fall back to the host module name when the config is silent.
				if mod, modErr := project.DetectModule(root); modErr == nil {
					cfg.RootNamespace = mod.RootNamespace()
					output.Verbose("Root namespace from go.mod: " + cfg.RootNamespace)
				} else {
					output.Verbose(fmt.Sprintf("No root namespace configured and no go.mod detected: %v", modErr))
				}
			}

			inputs, err := collectInputs(root, cfg, manifestPath, args)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if namespace != "" {
				if len(inputs) != 1 {
					output.Error("--namespace applies to exactly one template")
					os.Exit(1)
				}
				inputs[0].NamespaceOverride = namespace
			}
			if len(inputs) == 0 {
				output.Info("No templates found")
				return
			}
			output.Verbose(fmt.Sprintf("Processing %d template(s)", len(inputs)))

			session := generator.NewSession(templatebackend.New(), generator.ProjectContext{
				ProjectRoot:    root,
				CacheDirectory: cfg.CacheDir,
				RootNamespace:  cfg.RootNamespace,
				TemplateExt:    cfg.TemplateExt,
			}, &generator.SessionOptions{Writer: cmd.OutOrStdout()})

			result := session.Run(context.Background(), inputs)
			if !result.Succeeded {
				output.Error("Generation failed")
				os.Exit(1)
			}

			skipped := len(inputs) - len(result.Outputs)
			output.Success(fmt.Sprintf("Generated %d file(s), %d up to date", len(result.Outputs), skipped))
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML manifest listing the batch inputs")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Generation cache directory (default from razorgen.yml)")
	cmd.Flags().StringVar(&rootNamespace, "root-namespace", "", "Namespace prefix for generated code")
	cmd.Flags().StringVar(&projectRoot, "project-root", "", "Project root (default: current directory)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Explicit namespace for a single-template run")

	return cmd
}

// resolveProjectRoot returns the absolute project root: the explicit flag
// value when given, the current working directory otherwise.
func resolveProjectRoot(flag string) (string, error) {
	if flag == "" {
		return os.Getwd()
	}
	return filepath.Abs(flag)
}

// collectInputs builds the ordered batch from, in priority order: an
// explicit manifest, command-line arguments, or template discovery under
// the project root.
func collectInputs(root string, cfg *config.Config, manifestPath string, args []string) ([]generator.Input, error) {
	if manifestPath != "" && len(args) > 0 {
		return nil, fmt.Errorf("--manifest cannot be combined with template arguments")
	}

	if manifestPath != "" {
		m, err := config.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		inputs := make([]generator.Input, 0, len(m.Files))
		for _, entry := range m.Files {
			inputs = append(inputs, generator.Input{
				AbsolutePath:      entry.Path,
				NamespaceOverride: entry.Namespace,
			})
		}
		return inputs, nil
	}

	if len(args) > 0 {
		inputs := make([]generator.Input, 0, len(args))
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", arg, err)
			}
			inputs = append(inputs, generator.Input{AbsolutePath: abs})
		}
		return inputs, nil
	}

	ignore := cfg.IgnoreDirs
	if seg := firstSegmentUnder(root, cfg.CacheDir); seg != "" {
		ignore = append(ignore, seg)
	}
	paths, err := filesystem.DiscoverTemplates(root, filesystem.DiscoverOptions{
		Extension:  cfg.TemplateExt,
		IgnoreDirs: ignore,
	})
	if err != nil {
		return nil, fmt.Errorf("discovering templates: %w", err)
	}

	inputs := make([]generator.Input, 0, len(paths))
	for _, p := range paths {
		inputs = append(inputs, generator.Input{AbsolutePath: p})
	}
	return inputs, nil
}

// firstSegmentUnder returns the first path element of dir relative to root,
// or "" when dir is not under root. Discovery skips that directory so
// generated output never becomes input.
func firstSegmentUnder(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) == 0 || parts[0] == "." {
		return ""
	}
	return parts[0]
}
