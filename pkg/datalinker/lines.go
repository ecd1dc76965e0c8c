package datalinker

import (
	"regexp"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/ctdf"
)

var leadingNumber = regexp.MustCompile(`^\d+`)

// Compiled whole-word patterns keyed by normalized short name
var wordPatterns = gcache.New(512).
	LRU().
	LoaderFunc(func(key interface{}) (interface{}, error) {
		return regexp.Compile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(key.(string)) + `($|[^\p{L}\p{N}])`)
	}).
	Build()

func wordPattern(word string) (*regexp.Regexp, error) {
	pattern, err := wordPatterns.Get(word)
	if err != nil {
		return nil, err
	}

	return pattern.(*regexp.Regexp), nil
}

// LineIndex resolves routing service routes to station catalogue lines
type LineIndex struct {
	Lines       []ctdf.Line
	RoutePrices []ctdf.RoutePrice
	Aliases     *AliasTable
}

func NewLineIndex(catalogue *ctdf.NetworkCatalogue, aliases *AliasTable) *LineIndex {
	return &LineIndex{
		Lines:       catalogue.Lines,
		RoutePrices: catalogue.RoutePrices,
		Aliases:     aliases,
	}
}

// agencyLines returns the lines whose transport maps to agency
func (i *LineIndex) agencyLines(agency string) []ctdf.Line {
	var lines []ctdf.Line

	agency = Normalize(agency)

	for _, line := range i.Lines {
		lineAgency, found := i.Aliases.ResolveAgency(line.Transport)
		if found && Normalize(lineAgency) == agency {
			lines = append(lines, line)
		}
	}

	return lines
}

func (i *LineIndex) ResolveRoute(route ctdf.RouteRef) (ctdf.Line, bool) {
	lines := i.agencyLines(route.AgencyName)

	var line ctdf.Line
	var found bool

	if len(lines) > 0 {
		switch i.Aliases.Matching(route.AgencyName) {
		case MatchingWord:
			line, found = i.matchWord(route, lines)
		case MatchingNumeric:
			line, found = matchNumeric(route, lines)
		default:
			line, found = matchExact(route, lines)
		}
	}

	if !found {
		log.Warn().
			Str("route", route.ID).
			Str("shortname", route.ShortName).
			Str("agency", route.AgencyName).
			Msg("Could not resolve route to a station catalogue line")
	}

	return line, found
}

// matchWord finds the short name as a whole word inside the route/price names, as those
// embed the line name in a longer description
func (i *LineIndex) matchWord(route ctdf.RouteRef, lines []ctdf.Line) (ctdf.Line, bool) {
	shortName := Normalize(route.ShortName)
	if shortName == "" {
		return ctdf.Line{}, false
	}

	word, err := wordPattern(shortName)
	if err != nil {
		log.Error().Err(err).Str("shortname", shortName).Msg("Invalid route short name pattern")
		return ctdf.Line{}, false
	}

	for _, routePrice := range i.RoutePrices {
		if !word.MatchString(Normalize(routePrice.Name)) {
			continue
		}

		for _, line := range lines {
			if line.ID == routePrice.LineID {
				return line, true
			}
		}
	}

	return ctdf.Line{}, false
}

func matchNumeric(route ctdf.RouteRef, lines []ctdf.Line) (ctdf.Line, bool) {
	number := leadingNumber.FindString(route.ShortName)
	if number == "" {
		return ctdf.Line{}, false
	}

	for _, line := range lines {
		if line.Name == number {
			return line, true
		}
	}

	return ctdf.Line{}, false
}

func matchExact(route ctdf.RouteRef, lines []ctdf.Line) (ctdf.Line, bool) {
	names := []string{Normalize(route.ShortName), Normalize(route.LongName)}

	for _, line := range lines {
		lineName := Normalize(line.Name)
		if lineName == "" {
			continue
		}

		for _, name := range names {
			if name == lineName {
				return line, true
			}
		}
	}

	return ctdf.Line{}, false
}
