package storage

import (
	bCtx "github.com/justunlock/goapi/base/ctx"
)

// Service stores secret payload objects. SignedUrl mints a fresh
// time-limited link on every call; permanent object paths are never handed
// to buyers.
type Service interface {
	Store(c bCtx.Ctx, path string, body []byte, contentType string) error
	Remove(c bCtx.Ctx, path string) error
	SignedUrl(c bCtx.Ctx, path string) (string, error)
}
