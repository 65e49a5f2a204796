// Package datasync moves bookmark data between YAML archives and the
// content store, so a library can be seeded, backed up and restored.
package datasync

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Gopirudra-hub/MindMark/internal/generation"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// QuestionRecord is the YAML shape of a quiz question.
type QuestionRecord struct {
	Type          string   `yaml:"type"`
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options,omitempty"`
	CorrectAnswer string   `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation,omitempty"`
	Difficulty    string   `yaml:"difficulty"`
}

// BookmarkRecord is the YAML shape of a bookmark with its category, tags
// and question set.
type BookmarkRecord struct {
	Title     string           `yaml:"title"`
	URL       string           `yaml:"url"`
	Content   string           `yaml:"content,omitempty"`
	Category  string           `yaml:"category,omitempty"`
	Tags      []string         `yaml:"tags,omitempty"`
	Questions []QuestionRecord `yaml:"questions,omitempty"`
}

// Archive is the top-level YAML document.
type Archive struct {
	Bookmarks []BookmarkRecord `yaml:"bookmarks"`
}

// ImportResult tracks counts for one import run.
type ImportResult struct {
	BookmarksNew      int
	BookmarksSkipped  int
	QuestionsNew      int
	QuestionsRejected int
	TagsAttached      int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer reads YAML bookmark records and writes them to the store.
type Importer struct {
	bookmarks  store.BookmarkRepository
	categories store.CategoryRepository
	tags       store.TagRepository
	questions  store.QuestionRepository
	writer     io.Writer
}

// NewImporter creates a new Importer reporting progress to writer.
func NewImporter(
	bookmarks store.BookmarkRepository,
	categories store.CategoryRepository,
	tags store.TagRepository,
	questions store.QuestionRepository,
	writer io.Writer,
) *Importer {
	return &Importer{
		bookmarks:  bookmarks,
		categories: categories,
		tags:       tags,
		questions:  questions,
		writer:     writer,
	}
}

// ImportFile imports an archive from a YAML file.
func (imp *Importer) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	archive, err := readYamlFile[Archive](path)
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}
	return imp.Import(ctx, archive.Bookmarks, opts)
}

// Import imports bookmark records. Bookmarks are keyed by URL: records whose
// URL already exists in the store are skipped, never merged. Questions go
// through the same validation as generated ones, so a malformed question is
// quarantined without failing the run.
func (imp *Importer) Import(ctx context.Context, records []BookmarkRecord, opts ImportOptions) (*ImportResult, error) {
	existing, err := imp.bookmarks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing bookmarks: %w", err)
	}
	knownURLs := make(map[string]bool, len(existing))
	for _, b := range existing {
		knownURLs[b.URL] = true
	}

	result := &ImportResult{}
	for i := range records {
		record := &records[i]

		if strings.TrimSpace(record.URL) == "" || strings.TrimSpace(record.Title) == "" {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  record %d: missing title or url\n", i+1)
			result.BookmarksSkipped++
			continue
		}
		if knownURLs[record.URL] {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %q (%s)\n", record.Title, record.URL)
			result.BookmarksSkipped++
			continue
		}
		knownURLs[record.URL] = true

		questions, rejected := normalizeRecordQuestions(record.Questions)
		for _, r := range rejected {
			_, _ = fmt.Fprintf(imp.writer, "  [BAD QUESTION]  %q: %s\n", record.Title, r.Reason)
		}
		result.QuestionsRejected += len(rejected)

		_, _ = fmt.Fprintf(imp.writer, "  [NEW]  %q (%s), %d questions\n", record.Title, record.URL, len(questions))
		result.BookmarksNew++
		result.QuestionsNew += len(questions)
		result.TagsAttached += len(record.Tags)

		if opts.DryRun {
			continue
		}

		if err := imp.createBookmark(ctx, record, questions); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (imp *Importer) createBookmark(ctx context.Context, record *BookmarkRecord, questions []*store.Question) error {
	bookmark := &store.Bookmark{
		Title: record.Title,
		URL:   record.URL,
	}
	if record.Content != "" {
		content := record.Content
		bookmark.Content = &content
	}
	if record.Category != "" {
		category, err := imp.categories.Ensure(ctx, record.Category)
		if err != nil {
			return fmt.Errorf("ensure category %q: %w", record.Category, err)
		}
		bookmark.CategoryID = &category.ID
	}

	if err := imp.bookmarks.Create(ctx, bookmark); err != nil {
		return fmt.Errorf("create bookmark %q: %w", record.Title, err)
	}

	for _, name := range record.Tags {
		tag, err := imp.tags.Ensure(ctx, name)
		if err != nil {
			return fmt.Errorf("ensure tag %q: %w", name, err)
		}
		if err := imp.tags.Attach(ctx, bookmark.ID, tag.ID); err != nil {
			return fmt.Errorf("attach tag %q to bookmark %d: %w", name, bookmark.ID, err)
		}
	}

	if len(questions) > 0 {
		if err := imp.questions.ReplaceForBookmark(ctx, bookmark.ID, questions); err != nil {
			return fmt.Errorf("store questions for bookmark %d: %w", bookmark.ID, err)
		}
	}
	return nil
}

// normalizeRecordQuestions funnels YAML questions through the same
// validation as generated ones.
func normalizeRecordQuestions(records []QuestionRecord) ([]*store.Question, []generation.Rejected) {
	raws := make([]generation.RawQuestion, len(records))
	for i, record := range records {
		raws[i] = generation.RawQuestion{
			Type:          record.Type,
			Question:      record.Question,
			Options:       record.Options,
			CorrectAnswer: record.CorrectAnswer,
			Explanation:   record.Explanation,
			Difficulty:    record.Difficulty,
		}
	}
	return generation.Normalize(raws)
}

// Exporter reads the store and produces YAML bookmark records.
type Exporter struct {
	bookmarks  store.BookmarkRepository
	categories store.CategoryRepository
	tags       store.TagRepository
	questions  store.QuestionRepository
}

// NewExporter creates a new Exporter.
func NewExporter(
	bookmarks store.BookmarkRepository,
	categories store.CategoryRepository,
	tags store.TagRepository,
	questions store.QuestionRepository,
) *Exporter {
	return &Exporter{
		bookmarks:  bookmarks,
		categories: categories,
		tags:       tags,
		questions:  questions,
	}
}

// ExportFile writes the whole store to a YAML file.
func (exp *Exporter) ExportFile(ctx context.Context, path string) error {
	archive, err := exp.Export(ctx)
	if err != nil {
		return err
	}
	if err := writeYamlFile(path, archive); err != nil {
		return fmt.Errorf("write archive %s: %w", path, err)
	}
	return nil
}

// Export snapshots every bookmark with its category, tags and questions.
// Review schedules and attempt history are deliberately left out: an
// archive restores content, not progress.
func (exp *Exporter) Export(ctx context.Context) (Archive, error) {
	bookmarks, err := exp.bookmarks.FindAll(ctx)
	if err != nil {
		return Archive{}, fmt.Errorf("load bookmarks: %w", err)
	}
	categories, err := exp.categories.FindAll(ctx)
	if err != nil {
		return Archive{}, fmt.Errorf("load categories: %w", err)
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	archive := Archive{Bookmarks: make([]BookmarkRecord, 0, len(bookmarks))}
	for _, bookmark := range bookmarks {
		record := BookmarkRecord{
			Title: bookmark.Title,
			URL:   bookmark.URL,
		}
		if bookmark.Content != nil {
			record.Content = *bookmark.Content
		}
		if bookmark.CategoryID != nil {
			record.Category = categoryNames[*bookmark.CategoryID]
		}

		tags, err := exp.tags.FindByBookmark(ctx, bookmark.ID)
		if err != nil {
			return Archive{}, fmt.Errorf("load tags for bookmark %d: %w", bookmark.ID, err)
		}
		for _, tag := range tags {
			record.Tags = append(record.Tags, tag.Name)
		}

		questions, err := exp.questions.FindByBookmark(ctx, bookmark.ID)
		if err != nil {
			return Archive{}, fmt.Errorf("load questions for bookmark %d: %w", bookmark.ID, err)
		}
		for _, question := range questions {
			qr := QuestionRecord{
				Type:          string(question.Type),
				Question:      question.Question,
				Options:       question.Options,
				CorrectAnswer: question.CorrectAnswer,
				Difficulty:    string(question.Difficulty),
			}
			if question.Explanation != nil {
				qr.Explanation = *question.Explanation
			}
			record.Questions = append(record.Questions, qr)
		}

		archive.Bookmarks = append(archive.Bookmarks, record)
	}

	return archive, nil
}
