// Package seed loads authors, categories and articles from a YAML document.
// Running the same document twice creates nothing the second time.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Document is the seed file layout. Articles point at authors by name and at
// categories by slug.
type Document struct {
	Authors    []models.NewAuthor   `yaml:"authors"`
	Categories []models.NewCategory `yaml:"categories"`
	Articles   []Article            `yaml:"articles"`
}

type Article struct {
	models.NewArticle `yaml:",inline"`
	Author            string `yaml:"author,omitempty"`
	Category          string `yaml:"category,omitempty"`
}

// Result counts the rows created by a run.
type Result struct {
	Authors    int
	Categories int
	Articles   int
}

func Load(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errs.NewMalformedPayloadError("seed", err)
	}
	return doc, nil
}

func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the document embedded in the binary.
func Default() (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(defaultDocument, &doc); err != nil {
		return Document{}, errs.NewMalformedPayloadError("default seed", err)
	}
	return doc, nil
}

// Run inserts whatever in doc is not stored yet.
func Run(ctx context.Context, store database.Storage, doc Document) (Result, error) {
	var res Result

	for _, a := range doc.Authors {
		existing, err := store.GetAuthorByName(ctx, a.Name)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		if _, err := store.CreateAuthor(ctx, a); err != nil {
			return res, fmt.Errorf("seeding author %q: %w", a.Name, err)
		}
		res.Authors++
	}

	for _, c := range doc.Categories {
		existing, err := store.GetCategoryBySlug(ctx, c.Slug)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		if _, err := store.CreateCategory(ctx, c); err != nil {
			return res, fmt.Errorf("seeding category %q: %w", c.Slug, err)
		}
		res.Categories++
	}

	for _, a := range doc.Articles {
		existing, err := store.GetArticleBySlugSimple(ctx, a.Slug)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}

		in := a.NewArticle
		if a.Author != "" {
			author, err := store.GetAuthorByName(ctx, a.Author)
			if err != nil {
				return res, err
			}
			if author == nil {
				return res, errs.NewInvalidFieldError("author", fmt.Sprintf("article %q references unknown author %q", a.Slug, a.Author))
			}
			in.AuthorID = &author.ID
		}
		if a.Category != "" {
			category, err := store.GetCategoryBySlug(ctx, a.Category)
			if err != nil {
				return res, err
			}
			if category == nil {
				return res, errs.NewInvalidFieldError("category", fmt.Sprintf("article %q references unknown category %q", a.Slug, a.Category))
			}
			in.CategoryID = &category.ID
		}

		if _, err := store.CreateArticle(ctx, in); err != nil {
			return res, fmt.Errorf("seeding article %q: %w", a.Slug, err)
		}
		res.Articles++
	}

	log.Info().
		Int("authors", res.Authors).
		Int("categories", res.Categories).
		Int("articles", res.Articles).
		Msg("seed complete")
	return res, nil
}
