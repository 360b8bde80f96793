package version

import (
	"fmt"
	"strings"
)

// Set at build time with -ldflags "-X github.com/wildme/dockerctl/pkg/version.VERSION=...".
var (
	VERSION = "dev"
	COMMIT  = ""
)

func New() *Version {
	return &Version{
		Version: strings.TrimSpace(VERSION),
		Commit:  strings.TrimSpace(COMMIT),
	}
}

func (version *Version) String() string {
	if version.Commit == "" {
		return version.Version
	}

	return fmt.Sprintf("%s (%s)", version.Version, version.Commit)
}
