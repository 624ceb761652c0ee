// Package web holds the wallet-connect page served at /app.
package web

import _ "embed"

//go:embed index.html
var Index []byte
