package services

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"blog/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

const (
	articlesDir = "articles"
	aboutDir    = "about"
)

var contentExts = []string{".md", ".mdx"}

// ContentRepository lists localized articles grouped by unit.
type ContentRepository interface {
	ListUnits() (models.Units, error)
}

// FileRepository reads a content tree laid out as
//
//	articles/<slug>/<lang>.md
//	articles/<slug>/<lang>/index.md
//	about/<lang>/index.md
type FileRepository struct {
	Root   string
	Logger *slog.Logger
}

func NewFileRepository(root string, logger *slog.Logger) *FileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileRepository{Root: root, Logger: logger}
}

func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") || filepath.IsAbs(cleanTarget) {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

func (r *FileRepository) ListUnits() (models.Units, error) {
	articlesRoot := filepath.Join(r.Root, articlesDir)
	byID := make(map[string]*models.ContentUnit)
	var units models.Units

	err := filepath.WalkDir(articlesRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isContentFile(d.Name()) {
			return nil
		}
		relPath, _ := filepath.Rel(articlesRoot, path)
		relPath = filepath.ToSlash(relPath)

		slug, code, ok := splitArticlePath(relPath)
		if !ok {
			r.Logger.Debug("ignoring file outside unit layout", "path", relPath)
			return nil
		}
		lang, err := Normalize(code)
		if err != nil {
			r.Logger.Warn("skipping article with invalid language", "path", relPath, "lang", code)
			return nil
		}

		article, err := r.readArticle(path)
		if err != nil {
			r.Logger.Warn("skipping article", "path", relPath, "error", err)
			return nil
		}
		article.ID = slug
		article.Path = filepath.ToSlash(filepath.Join(articlesDir, relPath))

		unit, exists := byID[slug]
		if !exists {
			unit = models.NewContentUnit(slug)
			byID[slug] = unit
			units = append(units, unit)
		}
		if !unit.Add(lang, article) {
			r.Logger.Warn("duplicate language in unit", "unit", slug, "lang", lang, "path", relPath)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Units{}, nil
		}
		return nil, fmt.Errorf("walk %s: %w", articlesRoot, err)
	}

	units.Sort()
	return units, nil
}

// splitArticlePath maps "slug/en.md" and "slug/en/index.md" to (slug, en).
func splitArticlePath(relPath string) (string, string, bool) {
	parts := strings.Split(relPath, "/")
	switch len(parts) {
	case 2:
		return parts[0], trimContentExt(parts[1]), true
	case 3:
		if trimContentExt(parts[2]) != "index" {
			return "", "", false
		}
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}

func (r *FileRepository) readArticle(path string) (*models.Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fm, body, format, err := ParseFrontMatter(content)
	if err != nil {
		return nil, err
	}
	article, err := DecodeArticle(fm)
	if err != nil {
		return nil, err
	}
	article.Body = body
	article.Format = format

	if email, ok := fm["author_email"].(string); ok && !IsEmail(email) {
		r.Logger.Warn("author_email does not look like an email", "path", path, "value", email)
	}
	if link, ok := fm["canonical_url"].(string); ok && !IsURL(link) {
		r.Logger.Warn("canonical_url does not look like a URL", "path", path, "value", link)
	}
	return &article, nil
}

// FetchAbout returns the about page for lang, or the fallback language's page
// when lang has none.
func (r *FileRepository) FetchAbout(lang, fallback string) (*models.About, error) {
	about, err := r.readAbout(lang)
	if err == nil {
		return about, nil
	}
	if !errors.Is(err, ErrNotFound) || lang == fallback {
		return nil, err
	}
	about, err = r.readAbout(fallback)
	if err != nil {
		return nil, err
	}
	about.Fallback = true
	return about, nil
}

func (r *FileRepository) readAbout(lang string) (*models.About, error) {
	dir := SafeJoin(r.Root, aboutDir, lang)
	if dir == "" {
		return nil, fmt.Errorf("about %q: %w", lang, ErrNotFound)
	}
	for _, ext := range contentExts {
		content, err := os.ReadFile(filepath.Join(dir, "index"+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		about := &models.About{Language: lang}
		fm, body, _, err := ParseFrontMatter(content)
		if err != nil {
			// Plain markdown without front matter.
			about.Body = strings.TrimSpace(string(content))
			return about, nil
		}
		if title, ok := fm["title"].(string); ok {
			about.Title = title
		}
		about.Body = body
		return about, nil
	}
	return nil, fmt.Errorf("about %q: %w", lang, ErrNotFound)
}

// CreateArticle writes a new localized article file and returns its path
// relative to the content root.
func (r *FileRepository) CreateArticle(slug, lang string, article models.Article, format string) (string, error) {
	slug = RemoveSlashes(slug)
	if slug == "" {
		return "", errors.New("empty slug")
	}
	ext := ".md"
	fullPath := SafeJoin(r.Root, articlesDir, filepath.Join(slug, lang+ext))
	if fullPath == "" {
		return "", fmt.Errorf("invalid article path %s/%s", slug, lang)
	}
	if _, err := os.Stat(fullPath); err == nil {
		return "", fmt.Errorf("%s: %w", fullPath, ErrExists)
	}

	content, err := ConstructFileContent(EncodeArticle(article), article.Body, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return "", err
	}
	rel, _ := filepath.Rel(r.Root, fullPath)
	return filepath.ToSlash(rel), nil
}

// LoadSite reads site.yml, site.yaml or site.toml from the content root.
// A missing file yields an empty config.
func (r *FileRepository) LoadSite() (*models.SiteConfig, error) {
	site := &models.SiteConfig{}
	for _, name := range []string{"site.yml", "site.yaml", "site.toml"} {
		content, err := os.ReadFile(filepath.Join(r.Root, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(name, ".toml") {
			err = toml.Unmarshal(content, site)
		} else {
			err = yaml.Unmarshal(content, site)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return site, nil
	}
	return site, nil
}

func isContentFile(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range contentExts {
		if ext == e {
			return true
		}
	}
	return false
}

func trimContentExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
