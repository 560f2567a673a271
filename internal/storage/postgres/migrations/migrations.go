// migrations встраивает SQL-миграции goose в бинарь.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
