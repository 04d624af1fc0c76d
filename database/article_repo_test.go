package database

import (
	"context"
	"testing"

	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
)

func slugs(articles []models.ArticleWithRelations) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Slug)
	}
	return out
}

func TestCreateAndGetArticleBySlug(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()
	author := mustAuthor(t, d, "Rahmat")
	category := mustCategory(t, d, "Moneter & Kekuasaan", "moneter")

	created, err := d.CreateArticle(ctx, models.NewArticle{
		Title:         "Suku Bunga",
		Slug:          "suku-bunga",
		Summary:       "Ringkasan",
		Content:       "Isi panjang",
		CoverImageURL: strPtr("https://img.example.com/cover.jpg"),
		AuthorID:      &author.ID,
		CategoryID:    &category.ID,
		IsFeatured:    true,
		ReadTime:      intPtr(7),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected server-assigned id")
	}
	if created.PublishedAt.IsZero() {
		t.Fatal("expected publishedAt to be assigned")
	}

	got, err := d.GetArticleBySlug(ctx, "suku-bunga")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected article, got nil")
	}
	if got.ID != created.ID || got.Title != created.Title || got.Content != created.Content {
		t.Errorf("row mismatch: got %+v, want %+v", got.Article, *created)
	}
	if !got.PublishedAt.Equal(created.PublishedAt) {
		t.Errorf("publishedAt = %v, want %v", got.PublishedAt, created.PublishedAt)
	}
	if !got.IsFeatured {
		t.Error("expected featured flag to round-trip")
	}
	if got.ReadTime == nil || *got.ReadTime != 7 {
		t.Errorf("readTime = %v, want 7", got.ReadTime)
	}
	if got.Author == nil || got.Author.Name != "Rahmat" {
		t.Errorf("author = %+v, want Rahmat", got.Author)
	}
	if got.Category == nil || got.Category.Slug != "moneter" {
		t.Errorf("category = %+v, want moneter", got.Category)
	}
}

func TestGetArticleBySlugSimple(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()
	category := mustCategory(t, d, "Politik", "politik")
	created := mustArticle(t, d, "pemilu", nil, category)

	got, err := d.GetArticleBySlugSimple(ctx, "pemilu")
	if err != nil {
		t.Fatalf("get simple: %v", err)
	}
	if got == nil {
		t.Fatal("expected article, got nil")
	}
	if got.ID != created.ID || got.CategoryID == nil || *got.CategoryID != category.ID {
		t.Errorf("got %+v, want %+v", *got, *created)
	}
}

func TestDuplicateArticleSlug(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()
	mustArticle(t, d, "sama", nil, nil)

	_, err := d.CreateArticle(ctx, models.NewArticle{Title: "B", Slug: "sama", Summary: "s", Content: "c"})
	if err == nil {
		t.Fatal("expected constraint failure on duplicate slug")
	}
	if !errs.IsUniqueConstraintViolationError(err) {
		t.Errorf("expected unique constraint violation, got %v", err)
	}

	all, err := d.ListArticles(ctx, ArticleFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 article after failed insert, got %d", len(all))
	}
}

func TestCategoryFilter(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()
	moneter := mustCategory(t, d, "Moneter", "moneter")
	politik := mustCategory(t, d, "Politik", "politik")
	mustArticle(t, d, "x", nil, moneter)
	mustArticle(t, d, "y", nil, politik)
	mustArticle(t, d, "z", nil, nil)

	got, err := d.ListArticles(ctx, ArticleFilter{CategorySlug: "moneter"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "x" {
		t.Fatalf("expected exactly [x], got %v", slugs(got))
	}
	if got[0].Category == nil || got[0].Category.ID != moneter.ID {
		t.Errorf("expected moneter attached, got %+v", got[0].Category)
	}

	none, err := d.ListArticles(ctx, ArticleFilter{CategorySlug: "olahraga"})
	if err != nil {
		t.Fatalf("list unknown: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no articles for unknown category, got %v", slugs(none))
	}
}

func TestListOrderingAndLimit(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()
	mustArticle(t, d, "first", nil, nil)
	mustArticle(t, d, "second", nil, nil)
	mustArticle(t, d, "third", nil, nil)

	got, err := d.ListArticles(ctx, ArticleFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"third", "second", "first"}
	if s := slugs(got); len(s) != 3 || s[0] != want[0] || s[1] != want[1] || s[2] != want[2] {
		t.Fatalf("expected %v, got %v", want, s)
	}
	for i := 1; i < len(got); i++ {
		if got[i].PublishedAt.After(got[i-1].PublishedAt) {
			t.Errorf("not sorted by publishedAt desc at %d", i)
		}
	}

	limited, err := d.ListArticles(ctx, ArticleFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Slug != "third" {
		t.Errorf("expected [third], got %v", slugs(limited))
	}

	mustArticle(t, d, "fourth", nil, nil)
	again, err := d.ListArticles(ctx, ArticleFilter{})
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if len(again) != 4 || again[0].Slug != "fourth" {
		t.Errorf("expected newest article first, got %v", slugs(again))
	}
}

func TestOptionalRelations(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()
	mustArticle(t, d, "yatim", nil, nil)

	got, err := d.GetArticleBySlug(ctx, "yatim")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected article, got nil")
	}
	if got.Author != nil || got.Category != nil {
		t.Errorf("expected absent relations, got author=%+v category=%+v", got.Author, got.Category)
	}

	all, err := d.ListArticles(ctx, ArticleFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].Author != nil || all[0].Category != nil {
		t.Errorf("unexpected listing %+v", all)
	}
}

func TestArticleNotFound(t *testing.T) {
	d := testDB(t)
	ctx := context.Background()

	got, err := d.GetArticleBySlug(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}

	row, err := d.GetArticleBySlugSimple(ctx, "does-not-exist")
	if err != nil || row != nil {
		t.Errorf("simple lookup: got %+v, %v", row, err)
	}
}

func TestArticleUnknownAuthor(t *testing.T) {
	d := testDB(t)
	missing := int64(999)
	_, err := d.CreateArticle(context.Background(), models.NewArticle{
		Title: "T", Slug: "t", Summary: "s", Content: "c", AuthorID: &missing,
	})
	if err == nil {
		t.Fatal("expected foreign key failure")
	}
	if !errs.IsForeignKeyConstraintError(err) {
		t.Errorf("expected foreign key violation, got %v", err)
	}
}

func TestArticleValidation(t *testing.T) {
	d := testDB(t)
	_, err := d.CreateArticle(context.Background(), models.NewArticle{
		Title: "T", Slug: "Not A Slug", Summary: "s", Content: "c",
	})
	if !errs.IsInvalidFieldError(err) {
		t.Fatalf("expected invalid field error, got %v", err)
	}
}

func TestReferencedCategoryCannotBeDeleted(t *testing.T) {
	d := testDB(t)
	category := mustCategory(t, d, "Moneter", "moneter")
	mustArticle(t, d, "x", nil, category)

	if err := d.db.Exec("DELETE FROM categories WHERE id = ?", category.ID).Error; err == nil {
		t.Fatal("expected delete of referenced category to be restricted")
	}
}

func TestBackendFailurePropagates(t *testing.T) {
	d := testDB(t)
	sqlDB, err := d.db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.Close()

	got, err := d.ListArticles(context.Background(), ArticleFilter{})
	if err == nil {
		t.Fatalf("expected error from closed database, got %v", got)
	}
	if !errs.IsDatabaseQueryError(err) {
		t.Errorf("expected database query error, got %v", err)
	}
}
