package models

import (
	"testing"
	"time"

	"github.com/rpupo63/editorial-backend/errs"
)

func strPtr(s string) *string { return &s }

func TestIsValidSlug(t *testing.T) {
	valid := []string{"moneter", "ekonomi-rakyat", "a1-b2-c3", "2025"}
	invalid := []string{"", "Moneter", "ekonomi--rakyat", "-awal", "akhir-", "dengan spasi", "garis_bawah"}

	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestNewArticleValidate(t *testing.T) {
	base := NewArticle{Title: "Judul", Slug: "judul", Summary: "Ringkas", Content: "Isi"}
	negative := -1
	zero := int64(0)

	tests := []struct {
		name  string
		edit  func(*NewArticle)
		field string
	}{
		{"valid", func(*NewArticle) {}, ""},
		{"missing title", func(a *NewArticle) { a.Title = "  " }, "title"},
		{"missing summary", func(a *NewArticle) { a.Summary = "" }, "summary"},
		{"missing content", func(a *NewArticle) { a.Content = "" }, "content"},
		{"bad slug", func(a *NewArticle) { a.Slug = "Judul Besar" }, "slug"},
		{"relative cover", func(a *NewArticle) { a.CoverImageURL = strPtr("/img/sampul.jpg") }, ""},
		{"bad cover", func(a *NewArticle) { a.CoverImageURL = strPtr("ftp://x/y.jpg") }, "coverImageUrl"},
		{"negative read time", func(a *NewArticle) { a.ReadTime = &negative }, "readTime"},
		{"zero author", func(a *NewArticle) { a.AuthorID = &zero }, "authorId"},
		{"zero category", func(a *NewArticle) { a.CategoryID = &zero }, "categoryId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.edit(&in)
			err := in.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errs.IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if field := err.(*errs.ApiErr).Field; field != tt.field {
				t.Errorf("field = %q, want %q", field, tt.field)
			}
		})
	}
}

func TestNewArticleModel(t *testing.T) {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	in := NewArticle{Title: "Judul", Slug: "judul", Summary: "Ringkas", Content: "Isi", IsFeatured: true}

	got := in.Model(at)
	if got.ID != 0 || !got.PublishedAt.Equal(at) || !got.IsFeatured || got.Slug != "judul" {
		t.Errorf("Model = %+v", got)
	}
}

func TestNewCategoryAndAuthorValidate(t *testing.T) {
	if err := (NewCategory{Name: "Moneter", Slug: "moneter"}).Validate(); err != nil {
		t.Errorf("category: %v", err)
	}
	if err := (NewCategory{Slug: "moneter"}).Validate(); !errs.IsMissingRequiredFieldError(err) {
		t.Errorf("category without name: %v", err)
	}
	if err := (NewAuthor{Name: "Sari", AvatarURL: strPtr("https://cdn.example/sari.png")}).Validate(); err != nil {
		t.Errorf("author: %v", err)
	}
	if err := (NewAuthor{Name: "Sari", AvatarURL: strPtr("not a url")}).Validate(); !errs.IsInvalidFieldError(err) {
		t.Errorf("author with bad avatar: %v", err)
	}
}
