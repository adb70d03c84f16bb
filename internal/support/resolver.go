package support

// Declaration is the raw sdk-support block of one attribute or layer type:
// for each capability tier, the minimum SDK version per platform. An empty
// version string means the tier was not declared for that platform.
type Declaration struct {
	// Basic is the "basic functionality" tier.
	Basic Versions
	// DataDriven is the "data-driven styling" tier.
	DataDriven Versions
}

// Versions holds per-platform minimum version strings for one tier.
type Versions struct {
	Android string
	IOS     string
}

// Get returns the declared minimum version for a platform.
func (v Versions) Get(p Platform) string {
	switch p {
	case PlatformAndroid:
		return v.Android
	case PlatformIOS:
		return v.IOS
	default:
		return ""
	}
}

// Flags holds the resolved booleans for one tier.
type Flags struct {
	Android bool
	IOS     bool
}

// Both reports whether the tier is supported on every target platform.
func (f Flags) Both() bool {
	return f.Android && f.IOS
}

// Matrix is the resolved support of one attribute or layer type:
// two tiers, two platforms.
type Matrix struct {
	Basic      Flags
	DataDriven Flags
}

// Resolve derives the support matrix for a declaration against the target
// SDK versions. A tier/platform combination that was never declared resolves
// to false. If either platform lacks data-driven support, the data-driven
// tier is zeroed for both, so a property is data-driven capable only when
// that is guaranteed on every target platform.
func Resolve(decl Declaration, targets Targets) Matrix {
	m := Matrix{
		Basic:      resolveTier(decl.Basic, targets),
		DataDriven: resolveTier(decl.DataDriven, targets),
	}

	if !m.DataDriven.Both() {
		m.DataDriven = Flags{}
	}

	return m
}

func resolveTier(v Versions, targets Targets) Flags {
	return Flags{
		Android: v.Android != "" && VersionAtLeast(targets.Android, v.Android),
		IOS:     v.IOS != "" && VersionAtLeast(targets.IOS, v.IOS),
	}
}
