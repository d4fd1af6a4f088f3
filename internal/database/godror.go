//go:build cgo

package database

import _ "github.com/godror/godror" // registers "godror"; needs cgo and Oracle Instant Client at runtime

const godrorAvailable = true
