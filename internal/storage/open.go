package storage

import (
	"context"

	"policerecords/internal/config"
	"policerecords/internal/logging"
	"policerecords/internal/storage/memstore"
	"policerecords/internal/storage/mongostore"
)

// Open selects the backend for this process. With UseDocumentStore set it
// tries MongoDB first and falls back to the in-memory backend when the
// connection fails, so the server always comes up. The returned close
// function releases backend resources and is safe to call once at
// shutdown.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (Storage, func(context.Context) error) {
	noop := func(context.Context) error { return nil }

	if !cfg.UseDocumentStore {
		log.Info(ctx, "using in-memory storage backend")
		return memstore.New(), noop
	}

	ms := mongostore.New(cfg.DatabaseName, log)
	if err := ms.Connect(ctx, cfg.MongoURI); err != nil {
		log.Warn(ctx, "mongodb unavailable, falling back to in-memory storage", "error", err)
		return memstore.New(), noop
	}

	log.Info(ctx, "using mongodb storage backend")
	return ms, ms.Disconnect
}
