package client

import (
	"fmt"
	"sort"
	"strings"
)

// Environment resolves the API base address
type Environment struct {
	Name string
	Base string
}

var (
	Production = Environment{
		Name: "production",
		Base: "https://api.elevenlabs.io",
	}
	ProductionUS = Environment{
		Name: "production_us",
		Base: "https://api.us.elevenlabs.io",
	}
	ProductionEU = Environment{
		Name: "production_eu",
		Base: "https://api.eu.residency.elevenlabs.io",
	}
)

var environments = map[string]Environment{
	Production.Name:   Production,
	ProductionUS.Name: ProductionUS,
	ProductionEU.Name: ProductionEU,
}

// EnvironmentByName looks up one of the predefined environments
func EnvironmentByName(name string) (Environment, error) {
	env, ok := environments[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Environment{}, fmt.Errorf("unknown environment %q (known: %s)", name, strings.Join(EnvironmentNames(), ", "))
	}
	return env, nil
}

// EnvironmentNames lists the predefined environment names, sorted
func EnvironmentNames() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
