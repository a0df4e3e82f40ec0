// Package db carries the SQL schema migrations for embedding into
// production builds.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
