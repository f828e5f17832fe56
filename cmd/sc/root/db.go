package root

import (
	"context"

	"github.com/MayaSCA/focus-city-scape/internal/engine"
	"github.com/MayaSCA/focus-city-scape/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	svc, err := engine.NewService(ctx, storage.NewSnapshotRepo(db))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
