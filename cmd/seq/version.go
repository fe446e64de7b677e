package main

import "runtime/debug"

// version is set at link time with -ldflags "-X main.version=...".
var version = ""

func moduleVersion() string {
	if version != "" {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}
