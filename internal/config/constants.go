package config

import "time"

// app constants
const (
	AppName        = "overlog"
	AppDescription = "unified log viewer for an Overleaf docker-compose deployment"

	Version = "0.3.0"
)

// logging constants
const (
	LogLevel  = "info"
	LogFormat = "console"
)

// compose constants
const (
	DefaultComposeBin = "docker compose"
	DefaultProject    = "overleaf"
	DefaultContainer  = "sharelatex"
)

// log retrieval constants
const (
	DefaultTail = "20"
	TailAll     = "all"

	// LogBaseModern holds service log files for image major versions >= ModernPathMajor
	LogBaseModern = "/var/log/overleaf"
	// LogBaseLegacy holds service log files for earlier image versions
	LogBaseLegacy = "/var/log/sharelatex"

	ModernPathMajor = 5

	DefaultImageVersion = "5.0.0"

	// PidRegistryPath accumulates one tail pid per in-container reader inside the target container
	PidRegistryPath = "/tmp/overlog-tails.pid"

	// PrefixWidth is the fixed column width of the service-name prefix on merged lines
	PrefixWidth = 13

	SinkBufferSize = 256
)

// file constants
const (
	ConfigFile = "overlog.yaml"
	RCFile     = "overleaf.rc"
)

// concurrency constants
const (
	MaxWorkers = 3

	SweepTimeout = 10 * time.Second
)

// KnownServices is the closed set of service names, in canonical dispatch order.
var KnownServices = []string{
	"chat",
	"clsi",
	"contacts",
	"docstore",
	"document-updater",
	"filestore",
	"git-bridge",
	"mongo",
	"notifications",
	"real-time",
	"redis",
	"spelling",
	"tags",
	"track-changes",
	"web",
	"history-v1",
	"project-history",
}

// OrchestratedServices are the services managed as independent compose containers.
// Everything else logs to a file inside the consolidated container.
var OrchestratedServices = map[string]bool{
	"mongo":      true,
	"redis":      true,
	"git-bridge": true,
}
