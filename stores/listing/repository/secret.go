package repository

import (
	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/secret"
	"github.com/justunlock/goapi/service/query"
)

type secretImpl struct {
	q query.Mongo
}

func NewSecret(q query.Mongo) secret.Repo {
	return &secretImpl{q}
}

func (im *secretImpl) FindOne(c ctx.Ctx, id secret.SecretId) (*secret.Secret, error) {
	res := &secret.Secret{}

	if err := im.q.FindOne(c, domain.TableSecrets, id, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *secretImpl) Create(c ctx.Ctx, val secret.Secret) error {
	if err := im.q.Insert(c, domain.TableSecrets, val); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}

	return nil
}

func (im *secretImpl) Delete(c ctx.Ctx, id secret.SecretId) error {
	if err := im.q.Remove(c, domain.TableSecrets, id); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
