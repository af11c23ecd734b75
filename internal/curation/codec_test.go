package curation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSections() []Section {
	return []Section{
		{
			BookTitle: "Deep Work",
			Author:    "Cal Newport",
			ASIN:      "B00X47ZVXM",
			Quotes: []Quote{
				{Text: "Clarity about what matters provides clarity about what does not.", Score: 145, Tags: []string{"discipline", "thinking"}},
			},
		},
		{
			BookTitle: "Atomic Habits",
			Author:    "James Clear",
			ASIN:      "B07D23CFGR",
			Quotes: []Quote{
				{Text: "Every action you take is a vote for the type of person you wish to become.", Score: 170, Tags: []string{"discipline"}, Note: "identity"},
				{Text: "You do not rise to the level of your goals.\nYou fall to the level of your systems.", Score: 160, Tags: []string{"wisdom"}},
			},
		},
	}
}

func TestWrite_SectionsAlphabeticalWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleSections(), WriteOptions{KeepPerBook: 2, TagOptions: []string{"wisdom", "discipline"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INSTRUCTIONS:")
	assert.Contains(t, out, "TAG OPTIONS:")
	assert.Contains(t, out, "BOOK: Atomic Habits")
	assert.Contains(t, out, "LENGTH: 74 chars | QUALITY SCORE: 170")
	assert.Contains(t, out, "YOUR NOTE: identity")

	// Alphabetical by title, regardless of input order.
	assert.Less(t, strings.Index(out, "BOOK: Atomic Habits"), strings.Index(out, "BOOK: Deep Work"))
}

func TestReadWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSections(), WriteOptions{KeepPerBook: 2}))

	sections, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	atomic := sections[0]
	assert.Equal(t, "Atomic Habits", atomic.BookTitle)
	assert.Equal(t, "James Clear", atomic.Author)
	assert.Equal(t, "B07D23CFGR", atomic.ASIN)
	require.Len(t, atomic.Quotes, 2)

	assert.Equal(t, "Every action you take is a vote for the type of person you wish to become.", atomic.Quotes[0].Text)
	assert.Equal(t, 170, atomic.Quotes[0].Score)
	assert.Equal(t, []string{"discipline"}, atomic.Quotes[0].Tags)

	// Embedded newlines in quote text survive the trip.
	assert.Equal(t, "You do not rise to the level of your goals.\nYou fall to the level of your systems.", atomic.Quotes[1].Text)
}

func TestRead_SurvivesDeletedQuoteBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSections(), WriteOptions{KeepPerBook: 2}))

	// Simulate the manual edit: delete one quote block wholesale.
	edited := strings.Replace(buf.String(),
		"QUOTE 2:\nYou do not rise to the level of your goals.\nYou fall to the level of your systems.\n\nLENGTH: 82 chars | QUALITY SCORE: 160\nTAGS: wisdom\n", "", 1)
	require.NotEqual(t, buf.String(), edited)

	sections, err := Read(strings.NewReader(edited))
	require.NoError(t, err)
	require.Len(t, sections, 2)

	for _, s := range sections {
		if s.BookTitle == "Atomic Habits" {
			assert.Len(t, s.Quotes, 1)
		}
	}
}

func TestRead_EditedTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSections(), WriteOptions{KeepPerBook: 2}))

	edited := strings.Replace(buf.String(), "TAGS: discipline, thinking", "TAGS: focus , craft,", 1)

	sections, err := Read(strings.NewReader(edited))
	require.NoError(t, err)

	for _, s := range sections {
		if s.BookTitle == "Deep Work" {
			assert.Equal(t, []string{"focus", "craft"}, s.Quotes[0].Tags)
		}
	}
}

func TestRead_FirstSectionSharesChunkWithHeader(t *testing.T) {
	// The instruction header ends on a banner line, not a dash delimiter,
	// so the alphabetically-first section arrives in the same chunk as the
	// header and must still parse.
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSections(), WriteOptions{
		KeepPerBook: 2,
		TagOptions:  []string{"wisdom", "discipline", "focus"},
		Notes:       []string{"NOTE: headings have been filtered out."},
	}))
	require.Contains(t, buf.String(), "INSTRUCTIONS:")

	sections, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, "Atomic Habits", sections[0].BookTitle)
	assert.Equal(t, "James Clear", sections[0].Author)
	assert.Len(t, sections[0].Quotes, 2)
}

func TestRead_DropsIncompleteSections(t *testing.T) {
	input := strings.Join([]string{
		"BOOK: Missing Author",
		"",
		"QUOTE 1:",
		"Some text that will be dropped because the section has no author line.",
		"",
		"TAGS: wisdom",
		"",
		strings.Repeat("-", 80),
		"",
		"AUTHOR: Orphan",
		"",
		strings.Repeat("-", 80),
	}, "\n")

	sections, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestRead_QuoteMissingMetadataLines(t *testing.T) {
	// The user deleted the LENGTH/TAGS lines of quote 1; the text must
	// still parse and the next quote must not be swallowed.
	input := strings.Join([]string{
		"BOOK: Some Book",
		"AUTHOR: Someone",
		"ASIN: B000000001",
		"",
		"QUOTE 1:",
		"First quote whose metadata got deleted in the editor.",
		"",
		"QUOTE 2:",
		"Second quote, fully intact.",
		"",
		"LENGTH: 27 chars | QUALITY SCORE: 120",
		"TAGS: wisdom",
		"",
		strings.Repeat("-", 80),
	}, "\n")

	sections, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Quotes, 2)

	assert.Equal(t, "First quote whose metadata got deleted in the editor.", sections[0].Quotes[0].Text)
	assert.Empty(t, sections[0].Quotes[0].Tags)
	assert.Equal(t, "Second quote, fully intact.", sections[0].Quotes[1].Text)
	assert.Equal(t, 120, sections[0].Quotes[1].Score)
}

func TestRead_EmptyInput(t *testing.T) {
	sections, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sections)
}
