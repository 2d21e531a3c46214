package main

import (
	"runtime/debug"
)

var app_ver string = ""

// app_version returns the -ldflags "-X main.app_ver" value when set, else the
// module version recorded by go install.
func app_version() string {
	if app_ver != "" {
		return app_ver
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "#UNAVAILABLE"
}
