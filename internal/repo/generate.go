// Package repo holds the ent-generated database client for the schemas
// under internal/schema. Run go generate ./internal/repo after changing
// any schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . ../schema
