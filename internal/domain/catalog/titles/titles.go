// Package titles turns raw release filenames into human-readable titles.
//
// The pipeline strips the file extension and a trailing release-group tag,
// breaks the name into space-separated words, removes scene tokens (years,
// season/episode markers, codec and resolution tags) and leftover
// punctuation, then title-cases the remainder. The result is stable:
// cleaning an already-clean title returns it unchanged.
package titles

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// extension is a short alphanumeric suffix after the last dot
	extension = regexp.MustCompile(`\.[A-Za-z0-9]{2,4}$`)

	// releaseGroup is the scene "-GROUP" tag at the very end of the name
	releaseGroup = regexp.MustCompile(`-\w+$`)

	// separators become spaces so bracketed words survive as words
	separators = regexp.MustCompile(`[\[\](){}._]`)

	// tokens removed as whole words, in order. Years are boundary-delimited
	// so they cannot clip resolution numbers like 1080p.
	tokenPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)\bS\d+E\d+\b`),
		regexp.MustCompile(`(?i)\bSeason[.\s]*\d+\b`),
		regexp.MustCompile(`(?i)\bEpisode[.\s]*\d+\b`),
		regexp.MustCompile(`(?i)\b(x264|x265|HEVC|WEBRip|BluRay)\b`),
		regexp.MustCompile(`(?i)\b\d+p\b`),
	}

	// leftovers is everything that is neither alphanumeric nor a space
	leftovers = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

	whitespace = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.English)
)

// Clean maps a raw uploaded filename to a display title. It never fails;
// a name made entirely of scene tokens cleans to the empty string.
func Clean(raw string) string {
	name := strings.TrimSpace(raw)
	name = extension.ReplaceAllString(name, "")
	name = releaseGroup.ReplaceAllString(name, "")
	name = separators.ReplaceAllString(name, " ")

	for _, p := range tokenPatterns {
		name = p.ReplaceAllString(name, " ")
	}

	name = leftovers.ReplaceAllString(name, "")
	name = whitespace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	return titleCaser.String(name)
}

// TrimExtension drops a trailing file extension without any other cleaning
func TrimExtension(name string) string {
	return extension.ReplaceAllString(strings.TrimSpace(name), "")
}
