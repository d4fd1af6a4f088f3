//go:build !cgo

package database

const godrorAvailable = false
