package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/contact/model"
	"safar/shared/constant"
	"safar/shared/kvstore"
)

type Contact interface {
	Insert(ctx context.Context, contact model.Contact) error
	Get(ctx context.Context, id string) (model.Contact, error)
	GetAll(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, contact model.Contact) error
}

type repositoryImpl struct {
	kv   kvstore.Store
	otel otel.Otel
}

func New(kv kvstore.Store, otel otel.Otel) Contact {
	return &repositoryImpl{
		kv:   kv,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, contact model.Contact) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Set(ctx, contact.ID, contact); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (contact model.Contact, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Get(ctx, id, &contact); err != nil {
		return model.Contact{}, err
	}

	return contact, nil
}

// GetAll returns every contact record, newest first. Records without a creation
// timestamp sort as oldest.
func (repo *repositoryImpl) GetAll(ctx context.Context) (contacts []model.Contact, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	raws, err := repo.kv.GetByPrefix(ctx, model.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts: %w", err)
	}

	contacts = make([]model.Contact, 0, len(raws))

	for _, raw := range raws {
		contact := model.Contact{}
		if err := json.Unmarshal(raw, &contact); err != nil {
			log.Error().Err(err).Msg("skipping undecodable contact record")

			continue
		}

		contacts = append(contacts, contact)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	return contacts, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, contact model.Contact) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Set(ctx, contact.ID, contact); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	return nil
}
