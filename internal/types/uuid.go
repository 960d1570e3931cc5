package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex co_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 1525)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateReferenceNumber returns a short human-readable reference such as
// `CO-XY12A8Q`. These are the numbers users see on printed documents; the
// ULID remains the storage identifier.
func GenerateReferenceNumber(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_JOB              = "job"
	UUID_PREFIX_CHANGE_ORDER     = "co"
	UUID_PREFIX_INVOICE          = "inv"
	UUID_PREFIX_RFI              = "rfi"
	UUID_PREFIX_SUBMITTAL        = "sub"
	UUID_PREFIX_PUNCH_ITEM       = "punch"
	UUID_PREFIX_DRAW_REQUEST     = "draw"
	UUID_PREFIX_PURCHASE_ORDER   = "po"
	UUID_PREFIX_LIEN_WAIVER      = "lw"
	UUID_PREFIX_WARRANTY_CLAIM   = "wc"
	UUID_PREFIX_INSURANCE_POLICY = "ins"
	UUID_PREFIX_ACCOUNT          = "acct"
	UUID_PREFIX_VENDOR           = "vend"
	UUID_PREFIX_CLIENT           = "client"
	UUID_PREFIX_LEAD             = "lead"
	UUID_PREFIX_USER             = "user"
	UUID_PREFIX_TENANT           = "tenant"
)

const (
	// Reference number prefixes for printed documents

	REF_PREFIX_JOB            = "JOB"
	REF_PREFIX_CHANGE_ORDER   = "CO"
	REF_PREFIX_INVOICE        = "INV"
	REF_PREFIX_RFI            = "RFI"
	REF_PREFIX_SUBMITTAL      = "SUB"
	REF_PREFIX_DRAW_REQUEST   = "DR"
	REF_PREFIX_PURCHASE_ORDER = "PO"
)
