package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the configuration file looked up in the working directory.
	DefaultConfigFile = "sqlfold.yaml"

	// ConfigEnvVar overrides the configuration file path.
	ConfigEnvVar = "SQLFOLD_CONFIG"
)
