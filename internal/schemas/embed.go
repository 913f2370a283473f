package schemas

import "embed"

//go:embed *.schema.json
var schemaFiles embed.FS
