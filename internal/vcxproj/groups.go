package vcxproj

import "github.com/vcxgen/vcxgen/internal/manifest"

// SourceGroup is a named, ordered collection of source file paths destined
// for one commented section of the descriptor. Group order and file order
// are preserved into the output; they matter for readability, not build
// correctness.
type SourceGroup struct {
	Name  string
	Files []string
}

// DefaultSettings are the built-in hlffi project settings, used when no
// manifest overrides them.
func DefaultSettings() manifest.Settings {
	return manifest.Settings{
		ProjectName:     "hlffi",
		GUID:            "{F7A8B1E3-9C4D-4E5F-8A6B-1D2E3F4A5B6C}",
		Toolset:         "v143",
		PlatformVersion: "10.0",
		Output:          "hlffi_monolithic.vcxproj",
		FinalName:       "hlffi.vcxproj",
	}
}

// DefaultGroups is the built-in hlffi source group set: the wrapper and VM
// core files are pinned by hand, the vendor trees are discovered by pattern.
// libuv needs its win subfolder pulled in explicitly; recursing would drag
// in the unix ports too.
func DefaultGroups() []manifest.GroupSpec {
	return []manifest.GroupSpec{
		{
			Name: "HLFFI wrapper code",
			Files: []string{
				`src\hlffi_core.c`,
				`src\hlffi_events.c`,
				`src\hlffi_integration.c`,
				`src\hlffi_lifecycle.c`,
				`src\hlffi_reload.c`,
				`src\hlffi_threading.c`,
			},
		},
		{
			Name: "HashLink VM core",
			Files: []string{
				`vendor\hashlink\src\allocator.c`,
				`vendor\hashlink\src\code.c`,
				`vendor\hashlink\src\module.c`,
				`vendor\hashlink\src\jit.c`,
				`vendor\hashlink\src\debugger.c`,
				`vendor\hashlink\src\profile.c`,
				`vendor\hashlink\src\gc.c`,
			},
		},
		{
			Name:    "HashLink standard library",
			Base:    "vendor/hashlink/src/std",
			Pattern: "*.c",
		},
		{
			Name:    "PCRE2 regex library",
			Base:    "vendor/hashlink/include/pcre",
			Pattern: "*.c",
		},
		{
			Name: "Plugin wrappers",
			Files: []string{
				`vendor\hashlink\libs\uv\uv.c`,
				`vendor\hashlink\libs\ssl\ssl.c`,
			},
		},
		{
			Name:    "libuv sources (embedded)",
			Base:    "vendor/hashlink/include/libuv/src",
			Pattern: "*.c",
			Subdirs: []string{"win"},
		},
		{
			Name:    "mbedtls sources (embedded - TLS/SSL support)",
			Base:    "vendor/hashlink/include/mbedtls/library",
			Pattern: "*.c",
		},
	}
}

// ResolveSettings overlays manifest settings on the defaults. Empty fields
// keep their default value.
func ResolveSettings(override manifest.Settings) manifest.Settings {
	s := DefaultSettings()
	if override.ProjectName != "" {
		s.ProjectName = override.ProjectName
	}
	if override.GUID != "" {
		s.GUID = override.GUID
	}
	if override.Toolset != "" {
		s.Toolset = override.Toolset
	}
	if override.PlatformVersion != "" {
		s.PlatformVersion = override.PlatformVersion
	}
	if override.Output != "" {
		s.Output = override.Output
	}
	if override.FinalName != "" {
		s.FinalName = override.FinalName
	}
	return s
}
