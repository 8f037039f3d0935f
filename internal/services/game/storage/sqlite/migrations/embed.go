package migrations

import "embed"

// PrizesRoot is the directory holding prize catalog migrations inside PrizesFS.
const PrizesRoot = "prizes"

//go:embed prizes/*.sql
var PrizesFS embed.FS
