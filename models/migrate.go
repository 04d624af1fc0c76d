package models

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Schema tasks:

  - Migrate creates or updates the authors, categories and articles tables.
    The articles table is migrated through ArticleWithRelations so its foreign keys
    (RESTRICT on delete) are created alongside it.
  - GenerateQueries writes typed gorm/gen query helpers (GENERATE_MODELS=true).
  - ColumnMismatches lists database columns the Go models do not map.
*/

// tables returns the models in dependency order.
func tables() []any {
	return []any{
		&Author{},
		&Category{},
		&ArticleWithRelations{},
	}
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// GenerateQueries emits gorm/gen query helpers for every model into outPath.
func GenerateQueries(db *gorm.DB, outPath string) error {
	if err := Migrate(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(Author{}, Category{}, Article{})
	g.Execute()

	log.Info().Str("outPath", outPath).Msg("query generation complete")
	return nil
}

// ColumnMismatches returns, per table, the database columns that no model field maps to.
// Tables with no mismatches are omitted.
func ColumnMismatches(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)

	for _, model := range tables() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !db.Migrator().HasTable(table) {
			log.Warn().Str("table", table).Msg("table does not exist yet")
			continue
		}

		columns, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("reading columns of %s: %w", table, err)
		}

		known := make(map[string]bool, len(stmt.Schema.DBNames))
		for _, name := range stmt.Schema.DBNames {
			known[name] = true
		}

		var missing []string
		for _, col := range columns {
			if !known[col.Name()] {
				missing = append(missing, col.Name())
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			report[table] = missing
		}
	}

	return report, nil
}
