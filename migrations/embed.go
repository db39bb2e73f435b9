package migrations

import "embed"

// FS holds the schema migrations compiled into the server binary.
//
//go:embed *.sql
var FS embed.FS
