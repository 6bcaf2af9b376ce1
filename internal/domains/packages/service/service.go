package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/packages/model"
	"safar/internal/domains/packages/model/dto"
	"safar/internal/domains/packages/repository"
	"safar/shared/constant"
	"safar/shared/failure"
	"safar/shared/identifier"
	"safar/shared/kvstore"
	"safar/shared/timezone"
)

type Package interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.CreatePackageResponse, error)
	GetAll(ctx context.Context, packageType string) (dto.PackagesResponse, error)
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
}

type serviceImpl struct {
	repo  repository.Package
	idGen identifier.Generator
	otel  otel.Otel
}

func New(repo repository.Package, idGen identifier.Generator, otel otel.Otel) Package {
	return &serviceImpl{
		repo:  repo,
		idGen: idGen,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.CreatePackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg := req.ToModel(s.idGen.NextID(model.KeyPrefix), timezone.Now())

	if err = s.repo.Insert(ctx, pkg); err != nil {
		log.Error().Err(err).Msg("failed to create package")

		return res, fmt.Errorf("failed to create package: %w", err)
	}

	return dto.CreatePackageResponse{
		Success: true,
		Package: pkg,
	}, nil
}

// GetAll lists visible packages. Inactive packages are excluded regardless of
// the type filter; an empty packageType returns every active package.
func (s *serviceImpl) GetAll(ctx context.Context, packageType string) (res dto.PackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	packages, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	filtered := make([]model.Package, 0, len(packages))

	for _, pkg := range packages {
		if !pkg.Active {
			continue
		}

		if packageType != "" && pkg.Type != packageType {
			continue
		}

		filtered = append(filtered, pkg)
	}

	res.FromModels(filtered)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return res, failure.NotFound("package not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to get package")

		return res, fmt.Errorf("failed to get package: %w", err)
	}

	return dto.PackageResponse{Package: pkg}, nil
}
