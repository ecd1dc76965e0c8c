package datalinker

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

type MatchingStrategy string

const (
	// MatchingExact compares normalized line and route names
	MatchingExact MatchingStrategy = "exact"
	// MatchingWord looks for the route short name as a whole word inside route/price names
	MatchingWord MatchingStrategy = "word"
	// MatchingNumeric compares the leading number of the route short name to the line name
	MatchingNumeric MatchingStrategy = "numeric"
)

//go:embed agency_aliases.yaml
var defaultAliases []byte

type AgencyAlias struct {
	Name       string           `yaml:"name"`
	Transports []string         `yaml:"transports"`
	Matching   MatchingStrategy `yaml:"matching"`
}

type AliasTable struct {
	Agencies []AgencyAlias `yaml:"agencies"`

	byTransport map[string]string
	byAgency    map[string]AgencyAlias
}

func LoadAliasTable(data []byte) (*AliasTable, error) {
	table := &AliasTable{}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("parse agency aliases: %w", err)
	}

	table.byTransport = map[string]string{}
	table.byAgency = map[string]AgencyAlias{}

	for _, agency := range table.Agencies {
		switch agency.Matching {
		case "":
			agency.Matching = MatchingExact
		case MatchingExact, MatchingWord, MatchingNumeric:
		default:
			return nil, fmt.Errorf("agency %s has unknown matching strategy %q", agency.Name, agency.Matching)
		}

		table.byAgency[Normalize(agency.Name)] = agency

		for _, transport := range append([]string{agency.Name}, agency.Transports...) {
			key := Normalize(transport)

			if existing, exists := table.byTransport[key]; exists && existing != agency.Name {
				return nil, fmt.Errorf("transport %s is mapped to both %s and %s", transport, existing, agency.Name)
			}

			table.byTransport[key] = agency.Name
		}
	}

	return table, nil
}

var DefaultAliasTable = sync.OnceValues(func() (*AliasTable, error) {
	return LoadAliasTable(defaultAliases)
})

// ResolveAgency maps a station catalogue transport name to a routing service agency.
// Unknown names never resolve.
func (t *AliasTable) ResolveAgency(transport string) (string, bool) {
	if t == nil {
		return "", false
	}

	agency, found := t.byTransport[Normalize(transport)]
	return agency, found
}

func (t *AliasTable) Matching(agency string) MatchingStrategy {
	if t == nil {
		return MatchingExact
	}

	if alias, found := t.byAgency[Normalize(agency)]; found {
		return alias.Matching
	}

	return MatchingExact
}
