package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"blog/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown front matter format")

func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := normalizeLineEndings(string(content))
	// YAML (---)
	if strings.HasPrefix(str, "---\n") {
		parts := strings.SplitN(str, "---", 3) // "", FM, Body
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := yaml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), "yaml", nil
			}
		}
	}
	// TOML (+++)
	if strings.HasPrefix(str, "+++\n") {
		parts := strings.SplitN(str, "+++", 3)
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := toml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), "toml", nil
			}
		}
	}
	// JSON ({), front matter only
	if strings.HasPrefix(strings.TrimSpace(str), "{") {
		var fm map[string]interface{}
		if err := json.Unmarshal([]byte(str), &fm); err == nil {
			return fm, "", "json", nil
		}
	}

	return nil, "", "", ErrUnknownFormat
}

func ConstructFileContent(fm map[string]interface{}, body string, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "yaml":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fm); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
	case "toml":
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(fm); err != nil {
			return nil, err
		}
		buf.WriteString("+++\n")
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(fm); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// DecodeArticle maps parsed front matter onto an Article.
func DecodeArticle(fm map[string]interface{}) (models.Article, error) {
	var a models.Article
	title, ok := fm["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return a, errors.New("missing title")
	}
	a.Title = title
	if author, ok := fm["author"].(string); ok {
		a.Author = author
	}

	tags, err := decodeTags(fm["tags"])
	if err != nil {
		return a, err
	}
	a.Tags = tags

	if raw, exists := fm["published_at"]; exists {
		ts, err := decodeTimestamp(raw)
		if err != nil {
			return a, fmt.Errorf("published_at: %w", err)
		}
		a.PublishedAt = ts
	}
	return a, nil
}

func decodeTags(v interface{}) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return []string{}, nil
	case []interface{}:
		tags := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("tag %v is not a string", item)
			}
			tags = append(tags, s)
		}
		return tags, nil
	case []string:
		return append([]string{}, list...), nil
	case string:
		return []string{list}, nil
	default:
		return nil, fmt.Errorf("tags: unsupported type %T", v)
	}
}

func decodeTimestamp(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case time.Time:
		return t.Unix(), nil
	case toml.LocalDate:
		return t.AsTime(time.UTC).Unix(), nil
	case toml.LocalDateTime:
		return t.AsTime(time.UTC).Unix(), nil
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Unix(), nil
			}
		}
		return 0, fmt.Errorf("cannot parse %q", t)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// EncodeArticle is the inverse of DecodeArticle, used when writing new files.
func EncodeArticle(a models.Article) map[string]interface{} {
	tags := append([]string{}, a.Tags...)
	fm := map[string]interface{}{
		"title":        a.Title,
		"tags":         tags,
		"published_at": a.PublishedAt,
	}
	if a.Author != "" {
		fm["author"] = a.Author
	}
	return fm
}

func normalizeLineEndings(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}
