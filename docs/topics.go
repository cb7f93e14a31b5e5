// Package docs embeds the user documentation of the nw command.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the topic displayed when none is asked for.
const Readme = "readme"

// Topic returns the markdown content of a documentation topic.
func Topic(name string) (string, error) {
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'nw topic': %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of several topics, one after the other.
// "*" stands for every topic but the readme.
func Topics(names ...string) (string, error) {
	var b bytes.Buffer
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			expanded = Names()
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Names returns the sorted names of the topics, readme excluded.
func Names() []string {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		// the embedded root always exists.
		panic(err)
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if e.IsDir() || name == Readme {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Title returns the first heading of a topic, without its '#' marks.
func Title(name string) string {
	content, err := Topic(name)
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
