package thought_test

import (
	"testing"

	"github.com/fractal-rmo/docaudit/pkg/controller/thought"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		content string
		exp     []*thought.Thought
	}{
		{
			name:    "empty",
			content: "",
			exp:     []*thought.Thought{},
		},
		{
			name:    "float numbers",
			content: `2025-08-31 INFO {"method":"tools/call","params":{"name":"sequentialthinking","arguments":{"thought":"first","nextThoughtNeeded":true,"thoughtNumber":1.0,"totalThoughts":3.0}}}`,
			exp:     []*thought.Thought{{Text: "first", Number: 1, Total: 3}},
		},
		{
			name:    "integer numbers",
			content: `{"arguments":{"thought":"second","thoughtNumber":2,"totalThoughts":3}}`,
			exp:     []*thought.Thought{{Text: "second", Number: 2, Total: 3}},
		},
		{
			name:    "escaped text",
			content: `{"arguments":{"thought":"say \"hi\"\nthen C:\\tmp {x}","thoughtNumber":1.0,"totalThoughts":1.0}}`,
			exp:     []*thought.Thought{{Text: "say \"hi\"\nthen C:\\tmp {x}", Number: 1, Total: 1}},
		},
		{
			name: "unrelated tool calls are skipped",
			content: `{"arguments":{"path":"/tmp/a"}}
{"arguments":{"thought":"kept","thoughtNumber":4.0,"totalThoughts":5.0}}
{"arguments":{"thought":"no numbers"}}`,
			exp: []*thought.Thought{{Text: "kept", Number: 4, Total: 5}},
		},
		{
			name: "fractional numbers are skipped",
			content: `{"arguments":{"thought":"x","thoughtNumber":1.5,"totalThoughts":3.7}}
{"arguments":{"thought":"y","thoughtNumber":2.0,"totalThoughts":3.5}}
{"arguments":{"thought":"z","thoughtNumber":3.00,"totalThoughts":3}}`,
			exp: []*thought.Thought{{Text: "z", Number: 3, Total: 3}},
		},
		{
			name: "log order is kept",
			content: `{"arguments":{"thought":"b","thoughtNumber":2.0,"totalThoughts":2.0}}
{"arguments":{"thought":"a","thoughtNumber":1.0,"totalThoughts":2.0}}`,
			exp: []*thought.Thought{
				{Text: "b", Number: 2, Total: 2},
				{Text: "a", Number: 1, Total: 2},
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(d.exp, thought.Parse(d.content)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestLast(t *testing.T) {
	t.Parallel()
	thoughts := []*thought.Thought{{Number: 1}, {Number: 2}, {Number: 3}}
	data := []struct {
		name string
		n    int
		exp  []int
	}{
		{name: "fewer than n", n: 5, exp: []int{1, 2, 3}},
		{name: "exactly n", n: 3, exp: []int{1, 2, 3}},
		{name: "more than n", n: 2, exp: []int{2, 3}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := thought.Last(thoughts, d.n)
			nums := make([]int, len(got))
			for i, th := range got {
				nums[i] = th.Number
			}
			if diff := cmp.Diff(d.exp, nums); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
