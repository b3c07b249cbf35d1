// Package vcxproj renders a monolithic Visual Studio project descriptor
// from declared and discovered source groups.
package vcxproj

import (
	"embed"
	"fmt"

	"github.com/vcxgen/vcxgen/internal/discovery"
	"github.com/vcxgen/vcxgen/internal/generator"
	"github.com/vcxgen/vcxgen/internal/manifest"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator produces a vcxproj descriptor from source group specs.
type Generator struct {
	settings manifest.Settings
	specs    []manifest.GroupSpec
	renderer *generator.Renderer
}

// New creates a generator for the given settings and group specs.
// Pass DefaultSettings()/DefaultGroups() for the built-in hlffi set.
func New(settings manifest.Settings, specs []manifest.GroupSpec) *Generator {
	return &Generator{
		settings: settings,
		specs:    specs,
		renderer: generator.NewRenderer(),
	}
}

// Settings returns the resolved project settings.
func (g *Generator) Settings() manifest.Settings {
	return g.settings
}

// BuildGroups resolves every group spec into a concrete source group, in
// declaration order. Explicit files keep their declared order; discovered
// files come back sorted from discovery. Missing vendor trees contribute
// empty groups rather than failing the run.
func (g *Generator) BuildGroups() ([]SourceGroup, error) {
	groups := make([]SourceGroup, 0, len(g.specs))

	for _, spec := range g.specs {
		group := SourceGroup{Name: spec.Name}
		group.Files = append(group.Files, spec.Files...)

		if spec.Base != "" {
			found, err := discovery.Find(spec.Base, spec.Pattern, discovery.Options{Recurse: spec.Recurse})
			if err != nil {
				return nil, fmt.Errorf("discovering %s: %w", spec.Name, err)
			}
			group.Files = append(group.Files, found...)

			for _, sub := range spec.Subdirs {
				found, err := discovery.Find(spec.Base+"/"+sub, spec.Pattern, discovery.Options{Recurse: spec.Recurse})
				if err != nil {
					return nil, fmt.Errorf("discovering %s/%s: %w", spec.Name, sub, err)
				}
				group.Files = append(group.Files, found...)
			}
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// Render produces the complete descriptor for the given groups, with CRLF
// line endings. Rendering the same groups twice yields identical bytes.
func (g *Generator) Render(groups []SourceGroup) ([]byte, error) {
	data := struct {
		Settings manifest.Settings
		Groups   []SourceGroup
	}{
		Settings: g.settings,
		Groups:   groups,
	}

	content, err := g.renderer.RenderFS(templatesFS, "templates/monolithic.vcxproj.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("rendering descriptor: %w", err)
	}

	return generator.CRLF(content), nil
}

// Generate resolves groups, renders the descriptor, and returns the write
// operation for the configured output path.
func (g *Generator) Generate() ([]generator.Operation, error) {
	groups, err := g.BuildGroups()
	if err != nil {
		return nil, err
	}

	content, err := g.Render(groups)
	if err != nil {
		return nil, err
	}

	return []generator.Operation{
		&generator.ReplaceFileOp{
			Path:    g.settings.Output,
			Content: content,
			Mode:    0644,
		},
	}, nil
}

// TotalFiles counts include entries across all groups.
func TotalFiles(groups []SourceGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Files)
	}
	return total
}
