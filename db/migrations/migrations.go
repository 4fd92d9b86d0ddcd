package migrations

import "embed"

// FS embeds the SQL migrations of every SQL store driver, one directory
// per driver. golang-migrate reads them through the iofs source.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
