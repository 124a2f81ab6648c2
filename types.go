package slogtune

import "io"

type Config struct {
	LogLevel  string     `yaml:"log_level"` // Root log level used as default.
	Overrides []Override `yaml:"overrides"`
}

type Override struct {
	Level      string   `yaml:"level"`
	Namespaces []string `yaml:"namespaces"`
}

type HandlerOptions struct {
	Debug         bool
	ModuleBase    string
	RootNamespace string
	Registry      *Registry
}

type ApplierOptions struct {
	RootNamespace string
	Out           io.Writer
}
