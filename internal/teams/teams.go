// Package teams holds the static registry of NBA teams used for display.
// The registry ships with the binary; it is loaded once and never mutated.
package teams

import (
	"fmt"
	"sort"
)

// Team represents the normalized team shape.
type Team struct {
	Tricode string `json:"tricode"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// ConfigurationError reports an invalid team registry. The table is static,
// so hitting this means the shipped data is broken; callers treat it as fatal.
type ConfigurationError struct {
	Tricode string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Tricode == "" {
		return "teams: " + e.Reason
	}
	return fmt.Sprintf("teams: %s: %s", e.Tricode, e.Reason)
}

// Lookup returns the team for a tricode.
func Lookup(tricode string) (Team, bool) {
	t, ok := registry[tricode]
	return t, ok
}

// LookupOrStub returns the team for a tricode, falling back to a stub so an
// unknown upstream code degrades the display instead of failing the fetch.
func LookupOrStub(tricode string) Team {
	if t, ok := registry[tricode]; ok {
		return t
	}
	return Team{Tricode: tricode, Name: tricode}
}

// All returns every team sorted by name.
func All() []Team {
	result := make([]Team, 0, len(registry))
	for _, t := range registry {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Validate checks the shipped registry at startup.
func Validate() error {
	if len(registry) != leagueSize {
		return &ConfigurationError{Reason: fmt.Sprintf("expected %d teams, have %d", leagueSize, len(registry))}
	}
	for code, t := range registry {
		if t.Tricode != code {
			return &ConfigurationError{Tricode: code, Reason: "tricode mismatch"}
		}
		if t.Name == "" {
			return &ConfigurationError{Tricode: code, Reason: "missing name"}
		}
		if t.LogoURL == "" {
			return &ConfigurationError{Tricode: code, Reason: "missing logo URL"}
		}
	}
	return nil
}
