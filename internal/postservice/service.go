// Package postservice coordinates storage, indexing, and rendering of
// blog posts.
package postservice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/i-asim/my-portfolio/internal/apperr"
	"github.com/i-asim/my-portfolio/internal/checksum"
	"github.com/i-asim/my-portfolio/internal/frontmatter"
	"github.com/i-asim/my-portfolio/internal/index"
	"github.com/i-asim/my-portfolio/internal/render"
	"github.com/i-asim/my-portfolio/internal/storage"
)

// PostDetail is the full representation of a post.
type PostDetail struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content"`
	Body        string         `json:"body"`
	Checksum    string         `json:"checksum"`
	Tags        []string       `json:"tags"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PostListItem is a lightweight item in a list response.
type PostListItem struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	Checksum    string    `json:"checksum"`
	Tags        []string  `json:"tags"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RenderedPost is the read-only presentation of a post.
type RenderedPost struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	HTML        string         `json:"html"`
}

// Service coordinates storage and index operations.
type Service struct {
	store storage.Provider
	db    index.PostIndex
}

// NewService creates a new post service.
func NewService(store storage.Provider, db index.PostIndex) *Service {
	return &Service{store: store, db: db}
}

// validName rejects names that do not carry the fixed document
// extension or that hide the extension behind an empty base name.
func validName(name string) error {
	if !strings.HasSuffix(name, storage.Extension) {
		return fmt.Errorf("%w: name must end in %s", apperr.ErrValidation, storage.Extension)
	}
	if strings.TrimSuffix(path.Base(name), storage.Extension) == "" {
		return fmt.Errorf("%w: empty post name", apperr.ErrValidation)
	}
	return nil
}

// GetPost reads a post from storage and parses it.
func (s *Service) GetPost(_ context.Context, name string) (*PostDetail, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := s.store.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return buildDetail(name, data), nil
}

// CreatePost writes a new post and indexes it. Empty content creates
// the post from the default document template.
func (s *Service) CreatePost(_ context.Context, name string, content []byte) (*PostDetail, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if _, err := s.store.Read(name); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if len(content) == 0 {
		content = []byte(frontmatter.DefaultDocument("New Blog Post", time.Now()))
	}
	if err := s.store.Write(name, content); err != nil {
		return nil, err
	}
	if err := s.IndexFile(name, content); err != nil {
		return nil, err
	}
	return buildDetail(name, content), nil
}

// UpdatePost writes updated content with optimistic concurrency: a
// non-empty ifMatch checksum must match the stored content.
func (s *Service) UpdatePost(_ context.Context, name string, content []byte, ifMatch string) (*PostDetail, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	existing, err := s.store.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if ifMatch != "" && ifMatch != checksum.Sum(existing) {
		return nil, apperr.ErrConflict
	}
	if err := s.store.Write(name, content); err != nil {
		return nil, err
	}
	if err := s.IndexFile(name, content); err != nil {
		return nil, err
	}
	return buildDetail(name, content), nil
}

// DeletePost removes a post from storage and index.
func (s *Service) DeletePost(_ context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := s.store.Delete(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.ErrNotFound
		}
		return err
	}
	return s.db.DeletePost(name)
}

// ListPosts returns paginated posts with optional tag filter.
func (s *Service) ListPosts(_ context.Context, limit, offset int, tag, sort string) ([]PostListItem, int, error) {
	rows, total, err := s.db.ListPosts(limit, offset, tag, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]PostListItem, len(rows))
	for i, r := range rows {
		items[i] = PostListItem{
			Name:        r.Name,
			Title:       r.Title,
			Description: r.Description,
			Date:        r.Date,
			Checksum:    r.Checksum,
			Tags:        nonNilSlice(r.Tags),
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// RenderPost reads a post and runs it through the rendering pipeline.
func (s *Service) RenderPost(ctx context.Context, name string) (*RenderedPost, error) {
	detail, err := s.GetPost(ctx, name)
	if err != nil {
		return nil, err
	}
	doc := render.Render(detail.Body)
	return &RenderedPost{
		Name:        detail.Name,
		Title:       detail.Title,
		Description: detail.Description,
		Frontmatter: detail.Frontmatter,
		HTML:        render.WriteHTML(doc),
	}, nil
}

// IndexFile upserts a raw document into the index. It shares the
// indexing path with the startup sync and the filesystem watcher.
func (s *Service) IndexFile(name string, data []byte) error {
	return index.IndexDocument(s.db, name, data)
}

// buildDetail constructs a PostDetail from raw data without re-reading the file.
func buildDetail(name string, data []byte) *PostDetail {
	fm, body := frontmatter.Split(string(data))
	return &PostDetail{
		Name:        name,
		Title:       index.ResolveTitle(fm, body, name),
		Description: fm.Description(),
		Content:     string(data),
		Body:        body,
		Checksum:    checksum.Sum(data),
		Tags:        nonNilSlice(fm.Tags()),
		Frontmatter: fm.Map(),
		UpdatedAt:   time.Now(),
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
