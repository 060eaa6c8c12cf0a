package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{name: "Help", text: "!help", want: Command{Kind: Help}},
		{name: "HelpPadded", text: "  !help \n", want: Command{Kind: Help}},
		{name: "Search", text: "!anime Attack on Titan", want: Command{Kind: SearchByName, Query: "Attack on Titan"}},
		{name: "SearchTrimsQuery", text: "!anime    naruto   ", want: Command{Kind: SearchByName, Query: "naruto"}},
		{name: "SearchMissingQuery", text: "!anime", want: Command{Kind: InvalidSearch}},
		{name: "SearchOnlySpaces", text: "!anime     ", want: Command{Kind: InvalidSearch}},
		{name: "Details", text: "!anime details 5", want: Command{Kind: DetailsByID, ID: 5}},
		{name: "DetailsExtraSpaces", text: "!anime details    42", want: Command{Kind: DetailsByID, ID: 42}},
		{name: "DetailsMissingID", text: "!anime details ", want: Command{Kind: InvalidDetails}},
		{name: "DetailsNonNumeric", text: "!anime details abc", want: Command{Kind: InvalidID, Target: DetailsByID}},
		{name: "DetailsNegative", text: "!anime details -5", want: Command{Kind: InvalidID, Target: DetailsByID}},
		{name: "DetailsTrailingWords", text: "!anime details 5 please", want: Command{Kind: InvalidID, Target: DetailsByID}},
		{name: "Recommendations", text: "!anime recommendations 339", want: Command{Kind: RecommendationsByID, ID: 339}},
		{name: "RecommendationsMissingID", text: "!anime recommendations", want: Command{Kind: InvalidRecommendations}},
		{name: "RecommendationsNonNumeric", text: "!anime recommendations x1", want: Command{Kind: InvalidID, Target: RecommendationsByID}},
		{name: "FixedDetails", text: "!lain", want: Command{Kind: FixedSubjectDetails}},
		{name: "FixedRecommendations", text: "!lain recommendations", want: Command{Kind: FixedSubjectRecommendations}},
		{name: "FixedNeedsExactMatch", text: "!lain please", want: Command{Kind: Ignore}},
		{name: "Unrelated", text: "hello there", want: Command{Kind: Ignore}},
		{name: "Empty", text: "", want: Command{Kind: Ignore}},
		{name: "NoSpaceAfterPrefix", text: "!animenaruto", want: Command{Kind: Ignore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParse_SpecificPrefixWinsOverSearch(t *testing.T) {
	cmd := Parse("!anime details 5")
	assert.Equal(t, DetailsByID, cmd.Kind)
	assert.Equal(t, 5, cmd.ID)
	assert.Empty(t, cmd.Query, "details must not fall through to search")

	cmd = Parse("!anime recommendations 5")
	assert.Equal(t, RecommendationsByID, cmd.Kind)
	assert.Empty(t, cmd.Query)
}

func TestParse_DetailsWithTooFewTokens(t *testing.T) {
	for _, text := range []string{"!anime details", "!anime details ", "!anime details \t "} {
		assert.Equal(t, InvalidDetails, Parse(text).Kind, "input %q", text)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "search", SearchByName.String())
	assert.Equal(t, "invalid_id", InvalidID.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestSplitTokens(t *testing.T) {
	assert.Equal(t, []string{"!anime", "details", "5"}, splitTokens("!anime details 5", 3))
	assert.Equal(t, []string{"!anime", "details", "5 6"}, splitTokens("!anime  details 5 6", 3))
	assert.Equal(t, []string{"!anime", "details"}, splitTokens("!anime details", 3))
	assert.Nil(t, splitTokens("   ", 3))
}
