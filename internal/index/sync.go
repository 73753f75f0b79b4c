package index

import (
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/i-asim/my-portfolio/internal/checksum"
	"github.com/i-asim/my-portfolio/internal/frontmatter"
	"github.com/i-asim/my-portfolio/internal/markup"
	"github.com/i-asim/my-portfolio/internal/storage"
)

// Sync walks the content directory and brings the index up to date:
//   - new/changed posts are parsed and upserted
//   - posts removed from disk are deleted from the index
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Name] = struct{}{}

		if checksums[m.Name] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Name)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("name", m.Name), slog.String("error", err.Error()))
			continue
		}
		if err := IndexDocument(db, m.Name, data); err != nil {
			logger.Warn("sync: index failed", slog.String("name", m.Name), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("name", m.Name))
		}
	}

	// Remove stale entries.
	for name := range checksums {
		if _, ok := disk[name]; !ok {
			if err := db.DeletePost(name); err != nil {
				logger.Warn("sync: delete failed", slog.String("name", name), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("name", name))
			}
		}
	}

	return nil
}

// IndexDocument splits the front matter off data and upserts the post.
// It is the single indexing path for the sync, watcher, and service layers.
func IndexDocument(db PostIndex, name string, data []byte) error {
	fm, body := frontmatter.Split(string(data))

	row := PostRow{
		Name:        name,
		Title:       ResolveTitle(fm, body, name),
		Description: fm.Description(),
		Date:        fm.Date(),
		Tags:        fm.Tags(),
		Checksum:    checksum.Sum(data),
		UpdatedAt:   time.Now(),
	}
	return db.UpsertPost(row, body)
}

// ResolveTitle resolves a display title: front-matter title, else the
// first heading in the body, else the file name without extension.
func ResolveTitle(fm frontmatter.Frontmatter, body, name string) string {
	if t := fm.Title(); t != "" {
		return t
	}
	for _, node := range markup.Parse(body) {
		if h, ok := node.(markup.Heading); ok {
			return markup.PlainText(h.Children)
		}
	}
	return strings.TrimSuffix(path.Base(name), storage.Extension)
}
