package registry

// AppDescriptor is one row of the hub registry: everything the orchestrator
// needs to fetch, install and start a sibling application repo.
type AppDescriptor struct {
	Name             string `toml:"name"`
	RepoURL          string `toml:"repo_url"`
	Category         string `toml:"category"`
	AppType          string `toml:"app_type"`
	StackHint        string `toml:"stack_hint"`
	Path             string `toml:"path"`
	DefaultPort      int    `toml:"default_port"`
	PortMax          int    `toml:"port_max"`
	StartCommand     string `toml:"start_cmd"`
	InstallCommand   string `toml:"install_cmd"`
	TestCommand      string `toml:"test_cmd"`
	BuildCommand     string `toml:"build_cmd"`
	HealthPath       string `toml:"health_path"`
	PackageManager   string `toml:"package_manager"`
	PythonEntrypoint string `toml:"python_entrypoint"`
	CapsuleMode      string `toml:"capsule_mode"`
	Description      string `toml:"description"`
	EnabledByDefault bool   `toml:"enabled_by_default"`
}

// registryFile is the on-disk shape: a TOML document of [[apps]] rows.
type registryFile struct {
	Apps []AppDescriptor `toml:"apps"`
}
