// Package utils exposes reusable helpers consumed by the autosync commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging for the CLI, along
// with small context and writer helpers shared across commands.
package utils
