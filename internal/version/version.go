package version

// Overridden at build time via -ldflags "-X server-molt/internal/version.Version=..."
var (
	AppName   = "server-molt"
	AppDesc   = "Classic prefix commands with typed argument binding"
	Version   = "dev"
	BuildDate = ""
)
