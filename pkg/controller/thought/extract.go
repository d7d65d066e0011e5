package thought

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const filePermission os.FileMode = 0o644

var reportTemplate = template.Must(template.New("thoughts").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`# Last {{len .Thoughts}} Sequential Thinking Thoughts
Extracted from: {{.LogFile}}
Generated: {{.Generated}}

---

{{range $i, $t := .Thoughts}}## Thought {{inc $i}} (Original: {{$t.Number}}/{{$t.Total}})

{{$t.Text}}

---

{{end}}`))

type report struct {
	LogFile   string
	Generated string
	Thoughts  []*Thought
}

// Extract writes the last Count thoughts of LogFile to OutputFile and returns how many were written.
func (c *Controller) Extract(logE *logrus.Entry) (int, error) {
	if c.param.Count < 1 {
		return 0, errors.New("the number of thoughts must be at least 1")
	}
	b, err := afero.ReadFile(c.fs, c.param.LogFile)
	if err != nil {
		return 0, fmt.Errorf("read the log file: %w", err)
	}
	all := Parse(string(b))
	thoughts := Last(all, c.param.Count)
	logE.WithFields(logrus.Fields{
		"found":     len(all),
		"extracted": len(thoughts),
	}).Debug("parse the log file")

	buf := &bytes.Buffer{}
	if err := reportTemplate.Execute(buf, &report{
		LogFile:   c.param.LogFile,
		Generated: c.param.Now.Format("2006-01-02 15:04:05"),
		Thoughts:  thoughts,
	}); err != nil {
		return 0, fmt.Errorf("render thoughts: %w", err)
	}
	if err := afero.WriteFile(c.fs, c.param.OutputFile, buf.Bytes(), filePermission); err != nil {
		return 0, fmt.Errorf("write thoughts: %w", err)
	}
	fmt.Fprintf(c.stdout, "Extracted %d thoughts to %s\n", len(thoughts), c.param.OutputFile)
	return len(thoughts), nil
}
