package domain

import (
	"strings"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeCurrencyAddress is the sentinel currency value the paywall contract
// emits for native coin payments.
const NativeCurrencyAddress = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TxHash string

func (h TxHash) ToLower() TxHash {
	return TxHash(strings.ToLower(string(h)))
}

type BlockNumber uint64

type Table string

const (
	TableListings  Table = "listings"
	TableSecrets   Table = "secrets"
	TablePurchases Table = "purchases"
)

// ContentType determines how a secret payload resolves into a
// client-deliverable reference.
type ContentType string

const (
	ContentTypeUrl   ContentType = "url"
	ContentTypeText  ContentType = "text"
	ContentTypeFile  ContentType = "file"
	ContentTypeImage ContentType = "image"
)

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeUrl, ContentTypeText, ContentTypeFile, ContentTypeImage:
		return true
	}
	return false
}

// IsUploaded reports whether the secret payload is a storage object key
// rather than a raw value.
func (t ContentType) IsUploaded() bool {
	return t == ContentTypeFile || t == ContentTypeImage
}
