package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wordnik/output"
	"github.com/s0up4200/wordnik/wordnik"
)

// summarizer prints a result as a table of the fields worth reading
type summarizer func(w io.Writer, result wordnik.JSON) error

// summaries holds the table view of commands that have one. Other commands,
// and any result reshaped by --jq, use the generic table.
var summaries = map[*cobra.Command]summarizer{}

func summarizeWord(w io.Writer, result wordnik.JSON) error {
	var word wordnik.Word
	if err := wordnik.Decode(result, &word); err != nil {
		return err
	}

	rows := [][]string{{"Word", word.Word}}
	if word.OriginalWord != "" && word.OriginalWord != word.Word {
		rows = append(rows, []string{"Original word", word.OriginalWord})
	}
	if word.CanonicalForm != "" && word.CanonicalForm != word.Word {
		rows = append(rows, []string{"Canonical form", word.CanonicalForm})
	}
	if len(word.Suggestions) > 0 {
		rows = append(rows, []string{"Suggestions", strings.Join(word.Suggestions, ", ")})
	}
	return output.Table(w, []string{"Property", "Value"}, rows)
}

func summarizeDefinitions(w io.Writer, result wordnik.JSON) error {
	var defs []wordnik.Definition
	if err := wordnik.Decode(result, &defs); err != nil {
		return err
	}
	return definitionTable(w, defs)
}

func definitionTable(w io.Writer, defs []wordnik.Definition) error {
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{d.PartOfSpeech, d.Text, labelText(d.Labels), relatedText(d.RelatedWords), d.SourceDictionary})
	}
	return output.Table(w, []string{"Part of speech", "Definition", "Labels", "Related", "Source"}, rows)
}

func labelText(labels []wordnik.Label) string {
	texts := make([]string, 0, len(labels))
	for _, l := range labels {
		texts = append(texts, l.Text)
	}
	return strings.Join(texts, ", ")
}

// relatedText formats groups as "synonym: a, b; antonym: c"
func relatedText(groups []wordnik.Relate) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, g.RelationshipType+": "+strings.Join(g.Words, ", "))
	}
	return strings.Join(parts, "; ")
}

func summarizeExamples(w io.Writer, result wordnik.JSON) error {
	var search struct {
		Examples []wordnik.Example `json:"examples"`
	}
	if err := wordnik.Decode(result, &search); err != nil {
		return err
	}
	return exampleTable(w, search.Examples)
}

func summarizeTopExample(w io.Writer, result wordnik.JSON) error {
	var example wordnik.Example
	if err := wordnik.Decode(result, &example); err != nil {
		return err
	}
	return exampleTable(w, []wordnik.Example{example})
}

func exampleTable(w io.Writer, examples []wordnik.Example) error {
	rows := make([][]string, 0, len(examples))
	for _, e := range examples {
		year := ""
		if e.Year > 0 {
			year = strconv.Itoa(e.Year)
		}
		rows = append(rows, []string{year, e.Title, e.Text})
	}
	return output.Table(w, []string{"Year", "Title", "Example"}, rows)
}

func summarizeWordOfTheDay(w io.Writer, result wordnik.JSON) error {
	var wotd wordnik.WordOfTheDay
	if err := wordnik.Decode(result, &wotd); err != nil {
		return err
	}

	fmt.Fprintf(w, "Word of the day: %s", wotd.Word)
	if date := day(wotd.PublishDate); date != "" {
		fmt.Fprintf(w, " (%s)", date)
	}
	fmt.Fprintln(w)

	if len(wotd.Definitions) > 0 {
		if err := definitionTable(w, wotd.Definitions); err != nil {
			return err
		}
	}
	if len(wotd.Examples) > 0 {
		if err := exampleTable(w, wotd.Examples); err != nil {
			return err
		}
	}
	if wotd.Note != "" {
		fmt.Fprintln(w, wotd.Note)
	}
	return nil
}

func summarizeWordLists(w io.Writer, result wordnik.JSON) error {
	var lists []wordnik.WordList
	if err := wordnik.Decode(result, &lists); err != nil {
		return err
	}
	return wordListTable(w, lists)
}

func summarizeWordList(w io.Writer, result wordnik.JSON) error {
	var list wordnik.WordList
	if err := wordnik.Decode(result, &list); err != nil {
		return err
	}
	return wordListTable(w, []wordnik.WordList{list})
}

func wordListTable(w io.Writer, lists []wordnik.WordList) error {
	rows := make([][]string, 0, len(lists))
	for _, l := range lists {
		rows = append(rows, []string{l.Permalink, l.Name, strconv.FormatInt(l.NumberWordsInList, 10), day(l.UpdatedAt)})
	}
	return output.Table(w, []string{"Permalink", "Name", "Words", "Updated"}, rows)
}

// day trims a Wordnik timestamp such as 2024-02-29T03:00:00.000+0000 to its date
func day(timestamp string) string {
	if len(timestamp) >= len(wordnik.DateFormat) {
		return timestamp[:len(wordnik.DateFormat)]
	}
	return timestamp
}
