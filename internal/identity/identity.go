package identity

const (
	BrandName = "Zellij"
	// AppSlug is the canonical identifier for user-facing and on-disk state.
	// It intentionally matches the only supported CLI binary name.
	AppSlug = "zellij"
	CLIName = "zellij"

	GlobalConfigFile = "config.yml"
	GlobalLayoutsDir = "layouts"

	// ConfigDirEnv overrides the config directory lookup when set.
	ConfigDirEnv = "ZELLIJ_CONFIG_DIR"
	// ConfigFileEnv overrides the config file lookup when set.
	ConfigFileEnv = "ZELLIJ_CONFIG_FILE"
)
