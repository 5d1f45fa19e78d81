package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// RequestService implements the item request use cases.
type RequestService struct {
	requests ports.RequestRepository
	items    ports.ItemRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewRequestService(
	requests ports.RequestRepository,
	items ports.ItemRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users, log: log}
}

func (s *RequestService) Create(ctx context.Context, requesterID string, in ports.CreateRequestInput) (*domain.ItemRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	r := &domain.ItemRequest{
		ID:          uuid.NewString(),
		Description: in.Description,
		RequesterID: requesterID,
		Created:     time.Now().UTC(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}

	s.log.Info().Str("request_id", r.ID).Str("requester_id", requesterID).Msg("item request created")
	return r, nil
}

func (s *RequestService) GetUserRequests(ctx context.Context, requesterID string, page ports.Page) ([]*ports.RequestDetail, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	list, err := s.requests.FindByRequester(ctx, requesterID, page)
	if err != nil {
		return nil, err
	}
	return s.joinItems(ctx, list)
}

func (s *RequestService) GetAllRequests(ctx context.Context, requesterID string, page ports.Page) ([]*ports.RequestDetail, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	list, err := s.requests.FindByOtherRequesters(ctx, requesterID, page)
	if err != nil {
		return nil, err
	}
	return s.joinItems(ctx, list)
}

func (s *RequestService) Get(ctx context.Context, requesterID, requestID string) (*ports.RequestDetail, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Request Id=%s", requestID)
		}
		return nil, err
	}

	items, err := s.items.FindByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &ports.RequestDetail{Request: *r, Items: items}, nil
}

func (s *RequestService) joinItems(ctx context.Context, list []*domain.ItemRequest) ([]*ports.RequestDetail, error) {
	out := make([]*ports.RequestDetail, 0, len(list))
	for _, r := range list {
		items, err := s.items.FindByRequest(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &ports.RequestDetail{Request: *r, Items: items})
	}
	return out, nil
}

func (s *RequestService) requireUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundf("User Id=%s", id)
		}
		return err
	}
	return nil
}
