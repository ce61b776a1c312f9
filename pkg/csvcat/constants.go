package csvcat

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Command completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or flags values
	ExitDirectoryNotFound = 11 // Sample directory does not exist
	ExitNotReadable       = 12 // Sample directory cannot be listed
	ExitFileNotFound      = 13 // Data file does not exist or cannot be opened
	ExitRowParseError     = 14 // Malformed row under the abort policy
)

const (
	// DefaultHeaderMarker is the suffix that identifies a sample's header file.
	DefaultHeaderMarker = "_Header.txt"

	// DefaultDelimiter is the field separator used by the column reader.
	DefaultDelimiter = ','

	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "csvcat.yaml"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "CSVCAT_"
)
