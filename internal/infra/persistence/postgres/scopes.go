package postgres

import (
	"strings"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paginate limits a query to one page. A non-positive size disables the limit.
func paginate(page entity.PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Size <= 0 {
			return db
		}

		return db.Offset(page.Offset()).Limit(page.Size)
	}
}

// idRow receives single-column id results of raw queries.
type idRow struct {
	ID uuid.UUID
}

// escapeLike escapes the LIKE wildcards in s so it matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
