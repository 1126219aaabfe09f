package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in the readme exists, and every topic is listed.
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) error = %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range listed {
		if !slices.Contains(all, topic) {
			t.Errorf("topic %q is listed in readme.md but does not exist", topic)
		}
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopics_StartWithATitle(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range append(all, "readme") {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}
		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))
		first, ok := doc.FirstChild().(*ast.Heading)
		if !ok || first.Level != 1 {
			t.Errorf("topic %q does not start with a level 1 heading", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	got, err := GetTopics("input", "chart")
	if err != nil {
		t.Fatalf("GetTopics() error = %v", err)
	}
	if !strings.Contains(got, "# Input") || !strings.Contains(got, "# Chart") {
		t.Errorf("GetTopics() misses a topic:\n%s", got)
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	if strings.Contains(all, "Run `stmt topic <topic>`") {
		t.Errorf("GetTopics(*) includes the readme")
	}

	if _, err := GetTopics("missing"); err == nil {
		t.Errorf("GetTopics(missing) succeeded, want an error")
	}
}
