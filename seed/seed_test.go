package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) database.Database {
	t.Helper()
	db, err := database.Open(database.ConnConfig{
		Type:     database.TypeSQLite,
		DSN:      filepath.Join(t.TempDir(), "seed.db"),
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return database.New(db)
}

func TestDefaultDocumentSeedsOnce(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	doc, err := Default()
	if err != nil {
		t.Fatalf("default doc: %v", err)
	}

	first, err := Run(ctx, store, doc)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Authors != len(doc.Authors) || first.Categories != len(doc.Categories) || first.Articles != len(doc.Articles) {
		t.Errorf("first run created %+v", first)
	}

	second, err := Run(ctx, store, doc)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second != (Result{}) {
		t.Errorf("expected second run to create nothing, got %+v", second)
	}

	article, err := store.GetArticleBySlug(ctx, "siapa-diuntungkan-suku-bunga-tinggi")
	if err != nil || article == nil {
		t.Fatalf("seeded article missing: %v", err)
	}
	if article.Author == nil || article.Author.Name != "Dimas Prasetyo" {
		t.Errorf("author = %+v", article.Author)
	}
	if article.Category == nil || article.Category.Slug != "moneter" {
		t.Errorf("category = %+v", article.Category)
	}
	if !article.IsFeatured {
		t.Error("expected featured article")
	}

	orphan, err := store.GetArticleBySlug(ctx, "catatan-redaksi")
	if err != nil || orphan == nil {
		t.Fatalf("orphan article missing: %v", err)
	}
	if orphan.Author != nil || orphan.Category != nil {
		t.Errorf("expected no relations, got %+v %+v", orphan.Author, orphan.Category)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("authors:\n  - name: A\n    twitter: '@a'\n"))
	if !errs.IsMalformedPayloadError(err) {
		t.Fatalf("expected malformed payload error, got %v", err)
	}
}

func TestRunUnknownReference(t *testing.T) {
	store := testStore(t)
	doc, err := Load(strings.NewReader(`
articles:
  - title: T
    slug: t
    summary: s
    content: c
    category: tidak-ada
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err = Run(context.Background(), store, doc)
	if !errs.IsInvalidFieldError(err) {
		t.Fatalf("expected invalid field error, got %v", err)
	}
}
