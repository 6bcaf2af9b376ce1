package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/packages/model"
	"safar/shared/constant"
	"safar/shared/kvstore"
)

type Package interface {
	Insert(ctx context.Context, pkg model.Package) error
	Get(ctx context.Context, id string) (model.Package, error)
	GetAll(ctx context.Context) ([]model.Package, error)
}

type repositoryImpl struct {
	kv   kvstore.Store
	otel otel.Otel
}

func New(kv kvstore.Store, otel otel.Otel) Package {
	return &repositoryImpl{
		kv:   kv,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, pkg model.Package) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Set(ctx, pkg.ID, pkg); err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (pkg model.Package, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Get(ctx, id, &pkg); err != nil {
		return model.Package{}, err
	}

	return pkg, nil
}

// GetAll returns every package record, newest first.
func (repo *repositoryImpl) GetAll(ctx context.Context) (packages []model.Package, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	raws, err := repo.kv.GetByPrefix(ctx, model.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan packages: %w", err)
	}

	packages = make([]model.Package, 0, len(raws))

	for _, raw := range raws {
		pkg := model.Package{}
		if err := json.Unmarshal(raw, &pkg); err != nil {
			log.Error().Err(err).Msg("skipping undecodable package record")

			continue
		}

		packages = append(packages, pkg)
	}

	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].CreatedAt.After(packages[j].CreatedAt)
	})

	return packages, nil
}
