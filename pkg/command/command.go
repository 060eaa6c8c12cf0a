package command

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	helpCommand            = "!help"
	searchCommand          = "!anime"
	detailsCommand         = "!anime details"
	recommendationsCommand = "!anime recommendations"
	fixedDetails           = "!lain"
	fixedRecommendations   = "!lain recommendations"

	searchPrefix          = searchCommand + " "
	detailsPrefix         = detailsCommand + " "
	recommendationsPrefix = recommendationsCommand + " "
)

type Kind int

const (
	Ignore Kind = iota
	Help
	SearchByName
	DetailsByID
	RecommendationsByID
	FixedSubjectDetails
	FixedSubjectRecommendations
	InvalidSearch
	InvalidDetails
	InvalidRecommendations
	InvalidID
)

var kindNames = map[Kind]string{
	Ignore:                      "ignore",
	Help:                        "help",
	SearchByName:                "search",
	DetailsByID:                 "details",
	RecommendationsByID:         "recommendations",
	FixedSubjectDetails:         "fixed_details",
	FixedSubjectRecommendations: "fixed_recommendations",
	InvalidSearch:               "invalid_search",
	InvalidDetails:              "invalid_details",
	InvalidRecommendations:      "invalid_recommendations",
	InvalidID:                   "invalid_id",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is the classified form of an inbound message.
type Command struct {
	Kind  Kind
	Query string // SearchByName
	ID    int    // DetailsByID, RecommendationsByID
	// Target is the subcommand an InvalidID was aimed at (DetailsByID or RecommendationsByID).
	Target Kind
}

// Parse classifies message text. It never performs I/O.
// The more specific "!anime details " and "!anime recommendations " prefixes
// are checked before the bare "!anime " prefix.
func Parse(text string) Command {
	text = strings.TrimSpace(text)

	switch text {
	case helpCommand:
		return Command{Kind: Help}
	case fixedDetails:
		return Command{Kind: FixedSubjectDetails}
	case fixedRecommendations:
		return Command{Kind: FixedSubjectRecommendations}
	case searchCommand:
		return Command{Kind: InvalidSearch}
	case detailsCommand:
		return Command{Kind: InvalidDetails}
	case recommendationsCommand:
		return Command{Kind: InvalidRecommendations}
	}

	switch {
	case strings.HasPrefix(text, detailsPrefix):
		return parseIDCommand(text, DetailsByID, InvalidDetails)
	case strings.HasPrefix(text, recommendationsPrefix):
		return parseIDCommand(text, RecommendationsByID, InvalidRecommendations)
	case strings.HasPrefix(text, searchPrefix):
		query := strings.TrimSpace(strings.TrimPrefix(text, searchPrefix))
		if query == "" {
			return Command{Kind: InvalidSearch}
		}
		return Command{Kind: SearchByName, Query: query}
	}

	return Command{Kind: Ignore}
}

func parseIDCommand(text string, kind, missing Kind) Command {
	tokens := splitTokens(text, 3)
	if len(tokens) < 3 {
		return Command{Kind: missing}
	}

	id, err := strconv.ParseUint(tokens[2], 10, 32)
	if err != nil {
		return Command{Kind: InvalidID, Target: kind}
	}
	return Command{Kind: kind, ID: int(id)}
}

// splitTokens splits s on whitespace into at most n tokens; the last token
// keeps whatever remains after the first n-1 (trimmed).
func splitTokens(s string, n int) []string {
	var tokens []string
	rest := strings.TrimSpace(s)
	for rest != "" && len(tokens) < n-1 {
		idx := strings.IndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			tokens = append(tokens, rest)
			return tokens
		}
		tokens = append(tokens, rest[:idx])
		rest = strings.TrimSpace(rest[idx:])
	}
	if rest != "" {
		tokens = append(tokens, rest)
	}
	return tokens
}
