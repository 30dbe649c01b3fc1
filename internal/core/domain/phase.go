package domain

// PhaseKind identifies one orchestrated step.
type PhaseKind string

const (
	// PhaseClean removes the build output directory.
	PhaseClean PhaseKind = "clean"
	// PhaseConfigure generates the build description.
	PhaseConfigure PhaseKind = "configure"
	// PhaseBuild compiles the configured project.
	PhaseBuild PhaseKind = "build"
	// PhaseTest runs the project's test suite.
	PhaseTest PhaseKind = "test"
)

func (k PhaseKind) String() string {
	return string(k)
}
