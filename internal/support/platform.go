package support

//go:generate go tool stringer -type=Platform -trimprefix Platform

// Platform identifies one of the native SDK targets the generated
// artifacts ship to.
type Platform int

const (
	PlatformAndroid Platform = iota
	PlatformIOS
)

// Targets holds the minimum SDK version the generated artifacts are built
// against, per platform. Attributes that require a newer SDK are dropped.
type Targets struct {
	Android string
	IOS     string
}

// DefaultTargets returns the SDK versions the shipped artifacts target.
func DefaultTargets() Targets {
	return Targets{
		Android: "8.1.0",
		IOS:     "5.1.0",
	}
}
