package wordnik

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode converts a generic JSON value into out, a pointer to a struct,
// slice or map. Field names follow the json struct tags.
func Decode(v JSON, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// WordRecord is the single-field record used in word list request bodies
type WordRecord struct {
	Word string `json:"word"`
}

// wordRecords wraps each plain word into a WordRecord
func wordRecords(words []string) []WordRecord {
	records := make([]WordRecord, 0, len(words))
	for _, w := range words {
		records = append(records, WordRecord{Word: w})
	}
	return records
}

// AuthToken is the response of the authenticate endpoint
type AuthToken struct {
	Token         string `json:"token"`
	UserID        int64  `json:"userId"`
	UserSignature string `json:"userSignature"`
}

// Word is the response of the word lookup endpoint
type Word struct {
	ID            int64    `json:"id"`
	Word          string   `json:"word"`
	OriginalWord  string   `json:"originalWord"`
	CanonicalForm string   `json:"canonicalForm"`
	Vulgar        string   `json:"vulgar"`
	Suggestions   []string `json:"suggestions"`
}

// Definition is one entry of the definitions endpoint
type Definition struct {
	Word             string   `json:"word"`
	Text             string   `json:"text"`
	PartOfSpeech     string   `json:"partOfSpeech"`
	SourceDictionary string   `json:"sourceDictionary"`
	AttributionText  string   `json:"attributionText"`
	Sequence         string   `json:"sequence"`
	Score            float64  `json:"score"`
	ExtendedText     string   `json:"extendedText"`
	Labels           []Label  `json:"labels"`
	RelatedWords     []Relate `json:"relatedWords"`
}

// Label annotates a definition (register, region, ...)
type Label struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Relate groups related words by relationship type
type Relate struct {
	RelationshipType string   `json:"relationshipType"`
	Words            []string `json:"words"`
}

// Example is a usage example of a word
type Example struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Year  int    `json:"year"`
}

// WordList is a named, ordered, user-owned collection of words
type WordList struct {
	ID                int64  `json:"id"`
	Permalink         string `json:"permalink"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Type              string `json:"type"`
	Username          string `json:"username"`
	UserID            int64  `json:"userId"`
	NumberWordsInList int64  `json:"numberWordsInList"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
	LastActivityAt    string `json:"lastActivityAt"`
}

// WordOfTheDay is the response of the wordOfTheDay endpoint
type WordOfTheDay struct {
	ID          int64        `json:"id"`
	Word        string       `json:"word"`
	PublishDate string       `json:"publishDate"`
	Note        string       `json:"note"`
	Definitions []Definition `json:"definitions"`
	Examples    []Example    `json:"examples"`
}
