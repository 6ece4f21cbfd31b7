//go:generate mockgen -source=selection.go -destination=selection_mock.go -package=selection
package selection

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"overlog/internal/app/errors"
	"overlog/internal/config"
)

// Strategy identifies how a service's logs are retrieved
type Strategy int

// Strategy values
const (
	// StrategyOrchestrated services are independent compose containers; their
	// logs come from the orchestrator's own log command.
	StrategyOrchestrated Strategy = iota
	// StrategyInContainer services log to files inside the consolidated
	// container; their logs come from a remote tail.
	StrategyInContainer
)

// Classify returns the retrieval strategy for a service name
func Classify(service string) Strategy {
	if config.OrchestratedServices[service] {
		return StrategyOrchestrated
	}

	return StrategyInContainer
}

// Selector expands positional arguments into an ordered service selection
type Selector interface {
	Expand(args []string, known []string) ([]string, error)
}

// selector implements the Selector interface
type selector struct{}

// NewSelector creates a new Selector instance
func NewSelector() Selector {
	return &selector{}
}

// Expand resolves names and glob patterns against the known service set.
// An empty argument list selects every known service. Order follows the
// arguments as given; glob matches expand in canonical set order.
// Duplicates are permitted.
func (s *selector) Expand(args []string, known []string) ([]string, error) {
	if len(args) == 0 {
		services := make([]string, len(known))
		copy(services, known)

		return services, nil
	}

	services := make([]string, 0, len(args))

	for _, arg := range args {
		if !isPattern(arg) {
			if !contains(known, arg) {
				return nil, fmt.Errorf("%w: '%s'", errors.ErrUnknownService, arg)
			}

			services = append(services, arg)

			continue
		}

		g, err := glob.Compile(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidPattern, arg)
		}

		matched := false

		for _, name := range known {
			if g.Match(name) {
				services = append(services, name)
				matched = true
			}
		}

		if !matched {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrNoServicesMatch, arg)
		}
	}

	return services, nil
}

// isPattern reports whether an argument contains glob metacharacters
func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// contains reports whether a service name is in the known set
func contains(known []string, name string) bool {
	for _, candidate := range known {
		if candidate == name {
			return true
		}
	}

	return false
}
