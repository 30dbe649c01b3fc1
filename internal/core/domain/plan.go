package domain

// Plan returns the phases to run for cfg, in execution order.
//
// Clean comes first when requested. A clean-only invocation stops there;
// any request for tests or examples means the tree is rebuilt afterwards,
// since those need fresh build artifacts.
func Plan(cfg BuildConfig) []PhaseKind {
	plan := make([]PhaseKind, 0, 4)

	if cfg.Clean {
		plan = append(plan, PhaseClean)
		if !cfg.Test && !cfg.Examples {
			return plan
		}
	}

	plan = append(plan, PhaseConfigure, PhaseBuild)
	if cfg.Test {
		plan = append(plan, PhaseTest)
	}
	return plan
}
