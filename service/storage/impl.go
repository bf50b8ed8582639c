package storage

import (
	"bytes"
	"io"
	"time"

	"cloud.google.com/go/storage"

	bCtx "github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/log"
)

type CloudStorageCfg struct {
	Client     *storage.Client
	BucketName string
	Timeout    time.Duration
	// signer identity for V4 signed urls
	SignerEmail string
	SignerKey   []byte
	UrlTtl      time.Duration
}

type cloudStorage struct {
	client      *storage.Client
	bucketName  string
	ctxTimeout  time.Duration
	signerEmail string
	signerKey   []byte
	urlTtl      time.Duration
}

func NewCloudStorage(cfg *CloudStorageCfg) Service {
	return &cloudStorage{
		client:      cfg.Client,
		bucketName:  cfg.BucketName,
		ctxTimeout:  cfg.Timeout,
		signerEmail: cfg.SignerEmail,
		signerKey:   cfg.SignerKey,
		urlTtl:      cfg.UrlTtl,
	}
}

func (s *cloudStorage) Store(c bCtx.Ctx, path string, body []byte, contentType string) error {
	ctx, cancel := bCtx.WithTimeout(c, s.ctxTimeout)
	defer cancel()
	w := s.client.Bucket(s.bucketName).Object(path).NewWriter(ctx)
	if len(contentType) > 0 {
		w.ObjectAttrs.ContentType = contentType
	}
	if _, err := io.Copy(w, bytes.NewReader(body)); err != nil {
		ctx.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("failed to copy")
		return err
	}
	if err := w.Close(); err != nil {
		ctx.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("failed to close writer")
		return err
	}
	return nil
}

func (s *cloudStorage) Remove(c bCtx.Ctx, path string) error {
	ctx, cancel := bCtx.WithTimeout(c, s.ctxTimeout)
	defer cancel()
	if err := s.client.Bucket(s.bucketName).Object(path).Delete(ctx); err != nil {
		ctx.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("failed to delete object")
		return err
	}
	return nil
}

func (s *cloudStorage) SignedUrl(c bCtx.Ctx, path string) (string, error) {
	url, err := storage.SignedURL(s.bucketName, path, &storage.SignedURLOptions{
		GoogleAccessID: s.signerEmail,
		PrivateKey:     s.signerKey,
		Method:         "GET",
		Expires:        time.Now().Add(s.urlTtl),
		Scheme:         storage.SigningSchemeV4,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("failed to sign url")
		return "", err
	}
	return url, nil
}
