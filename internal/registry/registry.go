package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/triad369/launchpad/internal/logger"
)

var regLogs = logger.PackageLogger("registry", "📚 REGISTRY")

// Ensure materializes the default registry at path if no file exists yet.
func Ensure(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultRegistry), 0644); err != nil {
		return fmt.Errorf("failed to write default registry: %w", err)
	}
	regLogs.Success("Created default registry at %s", path)
	return nil
}

// Load parses and validates the registry file at path.
func Load(path string) ([]AppDescriptor, error) {
	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to load registry %s: %w", path, err)
	}
	if err := validate(file.Apps); err != nil {
		return nil, err
	}
	return file.Apps, nil
}

func validate(apps []AppDescriptor) error {
	seen := make(map[string]bool, len(apps))
	for i, app := range apps {
		if app.Name == "" {
			return fmt.Errorf("registry entry %d has no name", i+1)
		}
		if seen[app.Name] {
			return fmt.Errorf("duplicate app name %q in registry", app.Name)
		}
		seen[app.Name] = true
		if app.PortMax == 0 {
			apps[i].PortMax = app.DefaultPort
		} else if app.DefaultPort > app.PortMax {
			return fmt.Errorf("app %q: default_port %d exceeds port_max %d",
				app.Name, app.DefaultPort, app.PortMax)
		}
	}
	return nil
}

// ByName finds an app in the registry. Returns an error naming the app if
// it is not registered.
func ByName(apps []AppDescriptor, name string) (AppDescriptor, error) {
	for _, app := range apps {
		if app.Name == name {
			return app, nil
		}
	}
	return AppDescriptor{}, fmt.Errorf("unknown app %q", name)
}

// Enabled returns the apps that are enabled by default.
func Enabled(apps []AppDescriptor) []AppDescriptor {
	var out []AppDescriptor
	for _, app := range apps {
		if app.EnabledByDefault {
			out = append(out, app)
		}
	}
	return out
}

// Select resolves a list of app names against the registry. An empty name
// list selects the enabled-by-default apps.
func Select(apps []AppDescriptor, names []string) ([]AppDescriptor, error) {
	if len(names) == 0 {
		return Enabled(apps), nil
	}
	var out []AppDescriptor
	for _, name := range names {
		app, err := ByName(apps, name)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, nil
}
