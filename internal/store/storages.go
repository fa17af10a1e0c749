// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/logger"
)

// MemoryDSN selects the in-memory account store.
const MemoryDSN = "memory"

// Storages groups the repositories of the service together with the
// connection that backs them.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages opens the store selected by cfg.DB.DSN, applies pending
// migrations and builds the repositories on top of it:
//   - "postgres://..." / "postgresql://..." → PostgreSQL;
//   - "sqlite://..." / "file:..."           → SQLite;
//   - "memory"                               → in-memory store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == MemoryDSN:
		log.Warn().Str("func", "NewStorages").Msg("using in-memory account store; accounts are lost on restart")
		return &Storages{AccountRepository: NewMemoryAccountRepository(log)}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, config.DB{DSN: dsn}, log)
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, config.DB{DSN: dsn}, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// redactDSN keeps only the scheme of dsn so credentials never reach logs or
// error messages.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://***"
	}
	if len(dsn) > 8 {
		return dsn[:8] + "***"
	}
	return dsn
}
