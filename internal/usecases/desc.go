package usecases

import (
	"regexp"
	"strings"
)

// Hashtags are # followed by word characters or CJK ideographs.
var (
	hashtagPattern = regexp.MustCompile(`#([\w\x{4e00}-\x{9fa5}]+)`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// ParsedDescription splits a raw video description into the plain title and
// its hashtag labels.
type ParsedDescription struct {
	Title string
	Tags  []string
}

// ParseDescription collects every hashtag in order of appearance (keeping
// duplicates), strips them from the text, collapses whitespace runs and
// trims the remainder into the title.
//
// "猫猫凝视 #少女感 #二次元 #动漫" → title "猫猫凝视", tags [少女感 二次元 动漫]
func ParseDescription(desc string) ParsedDescription {
	if desc == "" {
		return ParsedDescription{}
	}

	var tags []string
	for _, match := range hashtagPattern.FindAllStringSubmatch(desc, -1) {
		tags = append(tags, match[1])
	}

	title := hashtagPattern.ReplaceAllString(desc, "")
	title = whitespaceRun.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)

	return ParsedDescription{Title: title, Tags: tags}
}
