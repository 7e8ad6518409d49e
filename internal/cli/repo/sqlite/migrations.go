package sqlite

import _ "embed"

// tokensDDL создаёт таблицу tokens, если её ещё нет.
//
//go:embed migrations/001_init.sql
var tokensDDL string
