package domain

// Listing defaults
const (
	// DefaultListingCommand is the utility used to describe the working directory
	DefaultListingCommand = "tree"
	// DefaultEmptyListingMarker is the summary tree prints for an empty directory
	DefaultEmptyListingMarker = "0 directories, 0 files"
)

// DefaultListingArgs limits the listing to the top level.
var DefaultListingArgs = []string{"-L", "1"}

// Execution defaults
const (
	// DefaultShell interprets approved scripts
	DefaultShell = "/bin/bash"
	// DefaultShebang is prepended to scripts that lack an interpreter line
	DefaultShebang = "#!/bin/bash"
)

// DefaultShellArgs makes the shell abort on the first failing command and read the script from the next argument.
var DefaultShellArgs = []string{"-e", "-c"}

// Model configuration constants
const (
	// DefaultMaxTokens is the default maximum number of tokens
	DefaultMaxTokens = 1024
	// DefaultTemperature keeps script generation close to deterministic
	DefaultTemperature = 0.2
	// DefaultAuthEnvVar holds the completion service API key
	DefaultAuthEnvVar = "GROQ_API_KEY"
	// DefaultModelName is the model selected when the config names none
	DefaultModelName = "groq-llama3"
	// DefaultModelID is the Groq model identifier
	DefaultModelID = "llama3-70b-8192"
	// DefaultGroqEndpoint is Groq's OpenAI-compatible base URL
	DefaultGroqEndpoint = "https://api.groq.com/openai/v1"
)

// Logging defaults
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)
