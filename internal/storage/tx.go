package storage

import (
	"context"
	"errors"
	"fmt"
)

// Transactor opens store sessions.
type Transactor interface {
	Write(ctx context.Context) (*Writer, error)
}

// WithTx runs fn inside one store session. The session commits when fn returns nil
// and rolls back on an error or a panic; a panic is re-raised after the rollback.
func WithTx(ctx context.Context, t Transactor, fn func(w *Writer) error) (err error) {
	writer, err := t.Write(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = writer.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err = fn(writer); err != nil {
		if rbErr := writer.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err = writer.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
