package secret

import (
	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
)

type SecretId struct {
	Slug string `json:"slug" bson:"slug"`
}

// Secret holds the hidden payload of a listing: a redirect url, raw text,
// or the object key of an uploaded file.
type Secret struct {
	Slug        string             `json:"slug" bson:"slug"`
	ContentType domain.ContentType `json:"contentType" bson:"contentType"`
	Payload     string             `json:"payload" bson:"payload"`
}

func (s *Secret) ToId() SecretId {
	return SecretId{Slug: s.Slug}
}

type Repo interface {
	FindOne(c ctx.Ctx, id SecretId) (*Secret, error)
	Create(c ctx.Ctx, val Secret) error
	Delete(c ctx.Ctx, id SecretId) error
}
