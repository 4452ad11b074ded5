package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/securestore/internal/config"
	"github.com/dmitrijs2005/securestore/internal/filex"
	"github.com/dmitrijs2005/securestore/internal/logging"
	"github.com/dmitrijs2005/securestore/internal/securestore"
	"github.com/dmitrijs2005/securestore/internal/vault"
	"github.com/dmitrijs2005/securestore/internal/vault/redisvault"
	"github.com/dmitrijs2005/securestore/internal/vault/sqlvault"
)

// App is an opened store together with everything it was built from.
type App struct {
	config *config.Config
	logger logging.Logger
	vault  vault.Vault
	store  *securestore.Store
}

// NewApp opens the backend selected by c. When c.Encrypt is set the backend
// is unlocked with passphrase; otherwise passphrase is ignored.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, passphrase []byte) (*App, error) {
	v, err := openVault(ctx, c)
	if err != nil {
		return nil, err
	}

	if c.Encrypt {
		sealed, err := vault.Unlock(ctx, v, passphrase)
		if err != nil {
			closeVault(v)
			return nil, fmt.Errorf("unlock vault: %w", err)
		}
		v = sealed
	}

	store := securestore.New(v,
		securestore.WithLogger(logger),
		securestore.WithGenericTTL(c.GenericTTL),
		securestore.WithSessionTTL(c.SessionTTL),
		securestore.WithNamespace(c.Namespace),
	)

	logger.Debug(ctx, "store opened", "backend", c.Backend, "encrypted", c.Encrypt)
	return &App{config: c, logger: logger, vault: v, store: store}, nil
}

// Store returns the underlying secure store.
func (a *App) Store() *securestore.Store {
	return a.store
}

// Close releases the backend. A sealed vault wipes its key first.
func (a *App) Close() error {
	return closeVault(a.vault)
}

func openVault(ctx context.Context, c *config.Config) (vault.Vault, error) {
	switch c.Backend {
	case config.BackendSQLite:
		if err := filex.EnsureParentDir(c.DatabaseDSN); err != nil {
			return nil, err
		}
		return sqlvault.Open(ctx, sqlvault.DialectSQLite, c.DatabaseDSN)
	case config.BackendPostgres:
		return sqlvault.Open(ctx, sqlvault.DialectPostgres, c.DatabaseDSN)
	case config.BackendRedis:
		return redisvault.Dial(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB, c.RedisPrefix)
	case config.BackendMemory:
		return vault.NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, c.Backend)
	}
}

func closeVault(v vault.Vault) error {
	if c, ok := v.(vault.Closer); ok {
		return c.Close()
	}
	return nil
}
