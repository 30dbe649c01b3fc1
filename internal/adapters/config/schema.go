package config

// Forgefile represents the structure of the forge.yaml project file.
type Forgefile struct {
	Version        string        `yaml:"version"`
	Source         string        `yaml:"source"`
	Build          string        `yaml:"build"`
	ExamplesOption string        `yaml:"examples_option"`
	Toolchain      *ToolchainDTO `yaml:"toolchain"`
}

// ToolchainDTO names the external commands in the project file.
type ToolchainDTO struct {
	Generator string `yaml:"generator"`
	Driver    string `yaml:"driver"`
	Tester    string `yaml:"tester"`
}
