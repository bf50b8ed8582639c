package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/log"
	bValidator "github.com/justunlock/goapi/base/validator"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	"github.com/justunlock/goapi/domain/secret"
	"github.com/justunlock/goapi/service/ens"
	"github.com/justunlock/goapi/service/storage"
)

const (
	maxTitleLen = 200
	maxTextLen  = 10000
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{3,64}$`)

// uploads are restricted to types we can serve back safely
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"text/plain":      true,
}

type impl struct {
	listingRepo listing.Repo
	secretRepo  secret.Repo
	storage     storage.Service
	ens         ens.ENS
}

func New(listingRepo listing.Repo, secretRepo secret.Repo, storage storage.Service, ens ens.ENS) listing.Usecase {
	return &impl{
		listingRepo: listingRepo,
		secretRepo:  secretRepo,
		storage:     storage,
		ens:         ens,
	}
}

func (im *impl) Create(c ctx.Ctx, creator domain.Address, params listing.CreateParams) (*listing.Listing, error) {
	price, err := validateParams(params)
	if err != nil {
		return nil, err
	}

	receiver, err := im.resolveReceiver(c, params.ReceiverAddress)
	if err != nil {
		return nil, err
	}

	payload := params.TargetUrl
	objectKey := ""
	if params.ContentType.IsUploaded() {
		objectKey, err = im.storeUpload(c, params)
		if err != nil {
			return nil, err
		}
		payload = objectKey
	}

	lst := listing.Listing{
		Slug:            params.Slug,
		Title:           params.Title,
		Price:           price.String(),
		ReceiverAddress: receiver,
		CreatorAddress:  creator.ToLower(),
		CreatedAt:       time.Now(),
	}
	if err := im.listingRepo.Create(c, lst); err != nil {
		im.removeUpload(c, objectKey)
		return nil, err
	}

	if err := im.secretRepo.Create(c, secret.Secret{
		Slug:        params.Slug,
		ContentType: params.ContentType,
		Payload:     payload,
	}); err != nil {
		// roll back so the slug is not left claimed without a payload
		if derr := im.listingRepo.Delete(c, lst.ToId()); derr != nil {
			c.WithFields(log.Fields{
				"err":  derr,
				"slug": params.Slug,
			}).Error("rollback listingRepo.Delete failed")
		}
		im.removeUpload(c, objectKey)
		return nil, err
	}

	return &lst, nil
}

func (im *impl) Get(c ctx.Ctx, id listing.ListingId) (*listing.Listing, error) {
	return im.listingRepo.FindOne(c, id)
}

func (im *impl) GetByCreator(c ctx.Ctx, creator domain.Address, offset, limit int) ([]listing.Listing, error) {
	return im.listingRepo.FindByCreator(c, creator.ToLower(), offset, limit)
}

func (im *impl) GetAll(c ctx.Ctx, offset, limit int) ([]listing.Listing, error) {
	return im.listingRepo.FindAll(c, offset, limit)
}

func (im *impl) Delete(c ctx.Ctx, requester domain.Address, id listing.ListingId) error {
	lst, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if !lst.CreatorAddress.Equals(requester) {
		return domain.ErrForbidden
	}

	sec, err := im.secretRepo.FindOne(c, secret.SecretId{Slug: id.Slug})
	if err != nil && err != domain.ErrNotFound {
		return err
	}

	if err := im.listingRepo.Delete(c, id); err != nil {
		return err
	}
	if err := im.secretRepo.Delete(c, secret.SecretId{Slug: id.Slug}); err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err":  err,
			"slug": id.Slug,
		}).Error("secretRepo.Delete failed")
	}
	if sec != nil && sec.ContentType.IsUploaded() {
		im.removeUpload(c, sec.Payload)
	}
	return nil
}

func validateParams(params listing.CreateParams) (decimal.Decimal, error) {
	if !slugPattern.MatchString(params.Slug) {
		return decimal.Zero, domain.ErrBadParamInput
	}
	if params.Title == "" || len(params.Title) > maxTitleLen {
		return decimal.Zero, domain.ErrBadParamInput
	}
	if !params.ContentType.IsValid() {
		return decimal.Zero, domain.ErrUnsupportedContentType
	}

	price, err := decimal.NewFromString(params.Price)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidNumberFormat
	}
	// at most cent precision, inside the allowed band
	if price.Exponent() < -2 ||
		price.LessThan(listing.MinPrice) ||
		price.GreaterThan(listing.MaxPrice) {
		return decimal.Zero, domain.ErrBadParamInput
	}

	switch params.ContentType {
	case domain.ContentTypeUrl:
		u, err := url.Parse(params.TargetUrl)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return decimal.Zero, domain.ErrBadParamInput
		}
	case domain.ContentTypeText:
		if params.TargetUrl == "" || len(params.TargetUrl) > maxTextLen {
			return decimal.Zero, domain.ErrBadParamInput
		}
	default:
		if len(params.FileBody) == 0 || len(params.FileBody) > listing.MaxUploadBytes {
			return decimal.Zero, domain.ErrBadParamInput
		}
	}
	return price, nil
}

func (im *impl) resolveReceiver(c ctx.Ctx, receiver string) (domain.Address, error) {
	if strings.HasSuffix(receiver, ".eth") {
		resolved, err := im.ens.Resolve(c, receiver)
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"name": receiver,
			}).Warn("ens.Resolve failed")
			return "", domain.ErrInvalidAddress
		}
		if resolved.IsEmpty() {
			return "", domain.ErrInvalidAddress
		}
		return resolved.ToLower(), nil
	}
	addr := domain.Address(receiver).ToLower()
	if !bValidator.IsValidAddress(addr.ToLowerStr()) || addr.Equals(domain.EmptyAddress) {
		return "", domain.ErrInvalidAddress
	}
	return addr, nil
}

func (im *impl) storeUpload(c ctx.Ctx, params listing.CreateParams) (string, error) {
	mime := mimetype.Detect(params.FileBody)
	base := strings.Split(mime.String(), ";")[0]
	if !allowedMimeTypes[base] {
		return "", domain.ErrUnsupportedContentType
	}
	if params.ContentType == domain.ContentTypeImage && !strings.HasPrefix(base, "image/") {
		return "", domain.ErrUnsupportedContentType
	}

	key := fmt.Sprintf("%s/%s-%s", params.Slug, uuid.NewString(), sanitizeFileName(params.FileName))
	if err := im.storage.Store(c, key, params.FileBody, base); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"slug": params.Slug,
		}).Error("storage.Store failed")
		return "", err
	}
	return key, nil
}

func (im *impl) removeUpload(c ctx.Ctx, objectKey string) {
	if objectKey == "" {
		return
	}
	if err := im.storage.Remove(c, objectKey); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": objectKey,
		}).Error("storage.Remove failed")
	}
}

var fileNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func sanitizeFileName(name string) string {
	name = fileNamePattern.ReplaceAllString(name, "_")
	if name == "" || len(name) > 128 {
		name = "upload"
	}
	return name
}
