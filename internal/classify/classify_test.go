package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

func TestDetect_BookWithASIN(t *testing.T) {
	st := Detect("Atomic Habits: An Easy & Proven Way to Build Good Habits & Break Bad Ones", "James Clear", "B07D23CFGR")
	assert.Equal(t, entities.SourceTypeBook, st)
}

func TestDetect_TweetCollection(t *testing.T) {
	assert.Equal(t, entities.SourceTypeTweet, Detect("Tweets From Naval", "Naval Ravikant", ""))
	assert.Equal(t, entities.SourceTypeTweet, Detect("Tweet From @paulg", "Paul Graham", ""))
}

func TestDetect_ArticleWithoutASIN(t *testing.T) {
	st := Detect("How to Do Great Work and Why It Matters", "Paul Graham", "")
	assert.Equal(t, entities.SourceTypeArticle, st)
}

func TestDetect_ShortTitleWithoutASIN(t *testing.T) {
	// Too short for the article heuristic and no ASIN.
	assert.Equal(t, entities.SourceTypeOther, Detect("Notes", "Me", ""))
}

func TestDetect_NoAuthorNoASIN(t *testing.T) {
	assert.Equal(t, entities.SourceTypeOther, Detect("Some Untitled Web Clipping Export", "", ""))
}

func TestDetect_NonStandardASINLength(t *testing.T) {
	// An 11-character id is not an ASIN; with an id present the article
	// rule does not apply either.
	assert.Equal(t, entities.SourceTypeOther, Detect("A Long Enough Article Title", "Someone", "B07D23CFGRX"))
}

func TestDetect_Deterministic(t *testing.T) {
	first := Detect("Deep Work", "Cal Newport", "B00X47ZVXM")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Detect("Deep Work", "Cal Newport", "B00X47ZVXM"))
	}
}
