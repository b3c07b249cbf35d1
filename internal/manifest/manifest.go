// Package manifest reads the optional vcxgen.yml project manifest.
//
// The manifest overrides the built-in project settings and source group
// declarations. Without one, vcxgen falls back to its built-in defaults, so
// a bare invocation in a checkout still works with zero configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest filename vcxgen looks for in the working directory.
const FileName = "vcxgen.yml"

// Settings holds project-level descriptor metadata. Zero values mean
// "use the built-in default".
type Settings struct {
	ProjectName     string // RootNamespace in the descriptor
	GUID            string // ProjectGuid, braced form
	Toolset         string // PlatformToolset (e.g., v143)
	PlatformVersion string // WindowsTargetPlatformVersion
	Output          string // Output filename
	FinalName       string // Name the user is told to rename the output to
}

// GroupSpec declares one source group: either an explicit file list, a
// discovery spec (base directory + pattern), or both. Discovered files are
// appended after the explicit ones.
type GroupSpec struct {
	Name    string   `yaml:"name"`
	Files   []string `yaml:"files"`
	Base    string   `yaml:"base"`
	Pattern string   `yaml:"pattern"`
	Recurse bool     `yaml:"recurse"`
	Subdirs []string `yaml:"subdirs"` // Extra subdirectories searched with the same pattern
}

// Manifest is a parsed vcxgen.yml.
type Manifest struct {
	Settings Settings
	Groups   []GroupSpec
}

// Detect checks whether a directory contains a vcxgen.yml manifest.
func Detect(rootPath string) bool {
	_, err := os.Stat(filepath.Join(rootPath, FileName))
	return err == nil
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("manifest not found: %s", path)
	}

	// Project settings go through viper so environment overrides work
	// (VCXGEN_PROJECT_OUTPUT etc.).
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvPrefix("VCXGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := &Manifest{
		Settings: Settings{
			ProjectName:     v.GetString("project.name"),
			GUID:            v.GetString("project.guid"),
			Toolset:         v.GetString("project.toolset"),
			PlatformVersion: v.GetString("project.platform_version"),
			Output:          v.GetString("project.output"),
			FinalName:       v.GetString("project.final_name"),
		},
	}

	// Group declarations are structured, so they're unmarshalled directly.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc struct {
		Groups []GroupSpec `yaml:"groups"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	m.Groups = doc.Groups

	for i, g := range m.Groups {
		if err := validateGroup(i, g); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func validateGroup(i int, g GroupSpec) error {
	if g.Name == "" {
		return fmt.Errorf("groups[%d]: name is required", i)
	}
	if len(g.Files) == 0 && g.Base == "" {
		return fmt.Errorf("groups[%d] (%s): declare files or a base directory", i, g.Name)
	}
	if g.Base != "" && g.Pattern == "" {
		return fmt.Errorf("groups[%d] (%s): base requires a pattern", i, g.Name)
	}
	if g.Base == "" && (g.Pattern != "" || len(g.Subdirs) > 0 || g.Recurse) {
		return fmt.Errorf("groups[%d] (%s): pattern, subdirs and recurse require a base", i, g.Name)
	}
	return nil
}
