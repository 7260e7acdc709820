package version

// Version is the current release, overridable at build time via
// -ldflags "-X .../core/version.Version=...".
var Version = "v0.1.0"
