package config

import (
	"errors"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds project-level generation settings from razorgen.yml.
type Config struct {
	CacheDir      string   // generation cache directory, resolved against the project root
	RootNamespace string   // optional prefix for derived namespaces
	TemplateExt   string   // template extension for discovery
	IgnoreDirs    []string // extra directories discovery skips
}

// DefaultCacheDir is where generated artifacts live unless configured.
const DefaultCacheDir = "obj/gen"

// Load reads razorgen.yml from the project root. A missing config file is
// not an error: the defaults apply and the root namespace stays empty so the
// caller can fall back to go.mod detection. Environment variables with the
// RAZORGEN prefix override file values (e.g. RAZORGEN_CACHE_DIR).
func Load(projectRoot string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("razorgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	v.AutomaticEnv()
	v.SetEnvPrefix("RAZORGEN")

	v.SetDefault("cache_dir", DefaultCacheDir)
	v.SetDefault("template_ext", ".tmpl")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		CacheDir:      v.GetString("cache_dir"),
		RootNamespace: v.GetString("root_namespace"),
		TemplateExt:   v.GetString("template_ext"),
		IgnoreDirs:    v.GetStringSlice("ignore_dirs"),
	}

	if !filepath.IsAbs(cfg.CacheDir) {
		cfg.CacheDir = filepath.Join(projectRoot, cfg.CacheDir)
	}

	return cfg, nil
}
