package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/contact/model"
	"safar/internal/domains/contact/model/dto"
	"safar/internal/domains/contact/repository"
	"safar/shared/constant"
	"safar/shared/failure"
	"safar/shared/identifier"
	"safar/shared/kvstore"
	"safar/shared/timezone"
)

type Contact interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) (dto.SubmitContactResponse, error)
	GetAll(ctx context.Context) (dto.ContactsResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (dto.UpdateContactResponse, error)
}

type serviceImpl struct {
	repo  repository.Contact
	idGen identifier.Generator
	otel  otel.Otel
}

func New(repo repository.Contact, idGen identifier.Generator, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:  repo,
		idGen: idGen,
		otel:  otel,
	}
}

// Submit stores a new contact submission. Every submission creates a fresh
// record; there is no duplicate detection.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitContactRequest) (res dto.SubmitContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact := req.ToModel(s.idGen.NextID(model.KeyPrefix), timezone.Now())

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")

		return res, fmt.Errorf("failed to store contact submission: %w", err)
	}

	return dto.SubmitContactResponse{
		Success: true,
		ID:      contact.ID,
	}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.ContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	contacts, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(contacts)

	return res, nil
}

// UpdateStatus merges the new status and an update timestamp into the stored
// record. The status value is not checked against the enumerated set; the
// back-office dropdown constrains it on the client side. Concurrent updates
// resolve last-write-wins.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (res dto.UpdateContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateContactStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return res, failure.NotFound("contact not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to get contact")

		return res, fmt.Errorf("failed to get contact: %w", err)
	}

	now := timezone.Now()
	contact.Status = status
	contact.UpdatedAt = &now

	if err = s.repo.Update(ctx, contact); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update contact status")

		return res, fmt.Errorf("failed to update contact status: %w", err)
	}

	return dto.UpdateContactResponse{
		Success: true,
		Contact: contact,
	}, nil
}
