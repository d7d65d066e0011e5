package thought

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Thought is a thought record found in the log.
// Number and Total are the values the tool call was made with.
type Thought struct {
	Text   string
	Number int
	Total  int
}

var thoughtPattern = regexp.MustCompile(`"arguments":\{[^}]*"thought":"((?:[^"\\]|\\.)*)"[^}]*"thoughtNumber":(\d+)(?:\.0+)?(?:[^}.\d][^}]*)?"totalThoughts":(\d+)(?:\.0+)?(?:[^}.\d][^}]*)?\}`)

// Parse returns the thought records in log order.
func Parse(content string) []*Thought {
	matches := thoughtPattern.FindAllStringSubmatch(content, -1)
	thoughts := make([]*Thought, 0, len(matches))
	for _, m := range matches {
		num, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		total, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		thoughts = append(thoughts, &Thought{
			Text:   unescape(m[1]),
			Number: num,
			Total:  total,
		})
	}
	return thoughts
}

var fallbackReplacer = strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\\`, `\`)

func unescape(s string) string {
	var text string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &text); err != nil {
		return fallbackReplacer.Replace(s)
	}
	return text
}

// Last returns the last n thoughts, or all of them if there are fewer.
func Last(thoughts []*Thought, n int) []*Thought {
	if len(thoughts) <= n {
		return thoughts
	}
	return thoughts[len(thoughts)-n:]
}
