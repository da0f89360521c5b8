// Package ent contains the generated entity client. Regenerate with
// `go generate ./ent` after changing schemas.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
