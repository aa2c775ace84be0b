package actions

import (
	"context"

	"github.com/carson-networks/cashbox-server/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single store session;
// returning an error rolls the whole session back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
