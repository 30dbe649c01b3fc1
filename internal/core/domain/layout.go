package domain

const (
	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = "forge.yaml"

	// ProjectFileVersion is the only project file schema version understood.
	ProjectFileVersion = "1"

	// DefaultBuildDirName is the build output directory, relative to the project root.
	DefaultBuildDirName = "build"

	// DefaultExamplesOption is the cache variable switched on by --examples.
	DefaultExamplesOption = "BUILD_EXAMPLES"

	// BuildType is passed to every configure step.
	BuildType = "Release"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)
