package batch

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bilalbayram/postcheck/internal/quality"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const maxLineBytes = 1 << 20

type Post struct {
	ID       string `yaml:"id" json:"id"`
	Content  string `yaml:"content" json:"content"`
	Platform string `yaml:"platform,omitempty" json:"platform,omitempty"`
	Language string `yaml:"language,omitempty" json:"language,omitempty"`
}

type postFile struct {
	Posts []Post `yaml:"posts"`
}

type Defaults struct {
	Platform string
	Language string
}

type Item struct {
	ID               string                   `json:"id"`
	Platform         string                   `json:"platform"`
	Language         string                   `json:"language"`
	ShouldRegenerate bool                     `json:"should_regenerate"`
	Result           quality.ValidationResult `json:"result"`
	Recommendations  []string                 `json:"recommendations"`
}

type Summary struct {
	Total        int     `json:"total"`
	Valid        int     `json:"valid"`
	Regenerate   int     `json:"regenerate"`
	AverageScore float64 `json:"average_score"`
}

type Report struct {
	Posts   []Item  `json:"items"`
	Summary Summary `json:"summary"`
}

// Load reads posts from a .yaml/.yml file with a top-level posts list or a
// .jsonl file with one post per line.
func Load(path string) ([]Post, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("batch file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file %s: %w", path, err)
	}

	var posts []Post
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		posts, err = decodeYAML(path, data)
	case ".jsonl":
		posts, err = decodeJSONL(path, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported batch file format for %s: expected .yaml, .yml or .jsonl", path)
	}
	if err != nil {
		return nil, err
	}

	for idx := range posts {
		if strings.TrimSpace(posts[idx].ID) == "" {
			posts[idx].ID = fmt.Sprintf("post-%d", idx+1)
		}
	}
	return posts, nil
}

func decodeYAML(path string, data []byte) ([]Post, error) {
	var file postFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []Post{}, nil
		}
		return nil, fmt.Errorf("decode batch file %s: %w", path, err)
	}
	return file.Posts, nil
}

func decodeJSONL(path string, r io.Reader) ([]Post, error) {
	posts := make([]Post, 0, 16)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var post Post
		decoder := json.NewDecoder(strings.NewReader(raw))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&post); err != nil {
			return nil, fmt.Errorf("decode batch file %s line %d: %w", path, line, err)
		}
		posts = append(posts, post)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan batch file %s: %w", path, err)
	}
	return posts, nil
}

// Run validates every post. Per-post platform and language override defaults.
func Run(posts []Post, defaults Defaults, logger *logrus.Logger) Report {
	report := Report{Posts: make([]Item, 0, len(posts))}

	scoreTotal := 0
	for _, post := range posts {
		platform := firstNonEmpty(post.Platform, defaults.Platform, quality.DefaultPlatform)
		language := firstNonEmpty(post.Language, defaults.Language, quality.DefaultLanguage)

		result := quality.ValidateContent(post.Content, platform, language)
		item := Item{
			ID:               post.ID,
			Platform:         result.Platform,
			Language:         result.Language,
			ShouldRegenerate: quality.ShouldRegenerate(result),
			Result:           result,
			Recommendations:  quality.ImprovementRecommendations(result, platform),
		}
		report.Posts = append(report.Posts, item)

		scoreTotal += result.QualityScore
		if result.IsValid {
			report.Summary.Valid++
		}
		if item.ShouldRegenerate {
			report.Summary.Regenerate++
		}

		if logger != nil {
			logger.WithFields(logrus.Fields{
				"id":                post.ID,
				"platform":          result.Platform,
				"language":          result.Language,
				"quality_score":     result.QualityScore,
				"should_regenerate": item.ShouldRegenerate,
			}).Debug("validated batch post")
		}
	}

	report.Summary.Total = len(report.Posts)
	if report.Summary.Total > 0 {
		report.Summary.AverageScore = float64(scoreTotal) / float64(report.Summary.Total)
	}
	return report
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (r Report) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(r.Posts))
	for _, item := range r.Posts {
		rows = append(rows, map[string]any{
			"id":                item.ID,
			"platform":          item.Platform,
			"language":          item.Language,
			"quality_score":     item.Result.QualityScore,
			"is_valid":          item.Result.IsValid,
			"should_regenerate": item.ShouldRegenerate,
			"issues":            item.Result.Issues,
		})
	}
	return rows
}

func (r Report) Items() []any {
	items := make([]any, 0, len(r.Posts))
	for _, item := range r.Posts {
		items = append(items, item)
	}
	return items
}
