package cashbox

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/service"
)

const cursorSeparator = "|"

var errMalformedCursor = errors.New("malformed cursor")

// encodeCursor renders the keyset position as an opaque URL-safe token. The time
// keeps full precision so rows sharing a second are not skipped.
func encodeCursor(c *service.TransactionCursor) string {
	if c == nil {
		return ""
	}
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(token string) (*service.TransactionCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errMalformedCursor
	}
	at, id, ok := strings.Cut(string(raw), cursorSeparator)
	if !ok {
		return nil, errMalformedCursor
	}
	createdAt, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return nil, errMalformedCursor
	}
	txID, err := uuid.FromString(id)
	if err != nil {
		return nil, errMalformedCursor
	}
	return &service.TransactionCursor{CreatedAt: createdAt, ID: txID}, nil
}
