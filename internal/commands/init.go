package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ekhoroshev/razorgen/internal/config"
	"github.com/ekhoroshev/razorgen/output"
	"github.com/ekhoroshev/razorgen/project"
)

// InitCmd creates and returns the 'init' command, which writes a starter
// razorgen.yml into the current directory.
func InitCmd() *cobra.Command {
	var force bool
	var rootNamespace string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter razorgen.yml",
		Run: func(cmd *cobra.Command, args []string) {
			wd, err := os.Getwd()
			if err != nil {
				output.Error(fmt.Sprintf("Failed to resolve working directory: %v", err))
				os.Exit(1)
			}

			path := filepath.Join(wd, "razorgen.yml")
			if _, err := os.Stat(path); err == nil && !force {
				output.Error("razorgen.yml already exists")
				output.Info("Use --force to overwrite it")
				os.Exit(1)
			}

			ns := rootNamespace
			if ns == "" {
				if mod, modErr := project.DetectModule(wd); modErr == nil {
					ns = mod.RootNamespace()
				}
			}

			starter := struct {
				RootNamespace string `yaml:"root_namespace"`
				CacheDir      string `yaml:"cache_dir"`
				TemplateExt   string `yaml:"template_ext"`
			}{
				RootNamespace: ns,
				CacheDir:      config.DefaultCacheDir,
				TemplateExt:   ".tmpl",
			}

			data, err := yaml.Marshal(starter)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to render config: %v", err))
				os.Exit(1)
			}

			if err := os.WriteFile(path, data, 0644); err != nil {
				output.Error(fmt.Sprintf("Failed to write razorgen.yml: %v", err))
				os.Exit(1)
			}

			output.Success("Created razorgen.yml")
			output.Info("Next steps:")
			output.Step("put templates anywhere under the project (*.tmpl)")
			output.Step("razorgen generate")
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing razorgen.yml")
	cmd.Flags().StringVar(&rootNamespace, "root-namespace", "", "Namespace prefix (default: derived from go.mod)")

	return cmd
}
