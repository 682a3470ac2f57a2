// Package host detects the environment a build runs in.
package host

import (
	"os"

	"golang.org/x/term"
)

const (
	// Terminal is reported for interactive runs.
	Terminal = "Terminal"
	// Unattended is reported when stdout is not a terminal and no CI server is recognised.
	Unattended = "Unattended"
	// GenericCI is reported when CI is set but the server is not recognised.
	GenericCI = "CI"
)

// servers maps an environment variable set by a CI server to the server's name.
// Entries are checked in order.
var servers = []struct {
	env  string
	name string
}{
	{env: "GITHUB_ACTIONS", name: "GitHubActions"},
	{env: "GITLAB_CI", name: "GitLab"},
	{env: "TF_BUILD", name: "AzurePipelines"},
	{env: "TEAMCITY_VERSION", name: "TeamCity"},
	{env: "JENKINS_URL", name: "Jenkins"},
	{env: "BITBUCKET_BUILD_NUMBER", name: "Bitbucket"},
	{env: "APPVEYOR", name: "AppVeyor"},
	{env: "TRAVIS", name: "TravisCI"},
	{env: "BUILDKITE", name: "Buildkite"},
}

// Detector implements ports.HostDetector.
type Detector struct {
	getenv     func(string) string
	isTerminal func() bool
}

// NewDetector creates a Detector reading the process environment.
func NewDetector() *Detector {
	return &Detector{
		getenv: os.Getenv,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int
		},
	}
}

// Host returns the name of the build host.
func (d *Detector) Host() string {
	for _, s := range servers {
		if d.getenv(s.env) != "" {
			return s.name
		}
	}

	if ci := d.getenv("CI"); ci == "true" || ci == "1" {
		return GenericCI
	}

	if d.isTerminal() {
		return Terminal
	}
	return Unattended
}
