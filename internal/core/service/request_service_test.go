package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

func requestFixtures() (*stubRequestRepo, *stubItemRepo, *RequestService) {
	users := newStubUserRepo(
		&domain.User{ID: "u-1", Name: "Olga", Email: "olga@example.com"},
		&domain.User{ID: "u-2", Name: "Boris", Email: "boris@example.com"},
	)
	requests := newStubRequestRepo(
		&domain.ItemRequest{ID: "req-old", Description: "need a drill", RequesterID: "u-1", Created: testNow.Add(-2 * time.Hour)},
		&domain.ItemRequest{ID: "req-new", Description: "need a ladder", RequesterID: "u-1", Created: testNow.Add(-time.Hour)},
		&domain.ItemRequest{ID: "req-other", Description: "need a saw", RequesterID: "u-2", Created: testNow.Add(-30 * time.Minute)},
	)
	items := newStubItemRepo(
		&domain.Item{ID: "item-1", Name: "Ladder", Available: true, OwnerID: "u-2", RequestID: "req-new"},
	)
	svc := NewRequestService(requests, items, users, zerolog.Nop())
	return requests, items, svc
}

func TestRequestService_Create_Success(t *testing.T) {
	requests, _, svc := requestFixtures()

	r, err := svc.Create(context.Background(), "u-1", ports.CreateRequestInput{Description: "need a wrench"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID == "" {
		t.Error("id must be assigned")
	}
	if r.Created.IsZero() {
		t.Error("created must be stamped")
	}
	if _, err := requests.FindByID(context.Background(), r.ID); err != nil {
		t.Errorf("request not persisted: %v", err)
	}
}

func TestRequestService_Create_UnknownUser(t *testing.T) {
	_, _, svc := requestFixtures()

	_, err := svc.Create(context.Background(), "ghost", ports.CreateRequestInput{Description: "anything"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "User Id=ghost") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestRequestService_GetUserRequests_OwnOnlyNewestFirst(t *testing.T) {
	_, _, svc := requestFixtures()

	got, err := svc.GetUserRequests(context.Background(), "u-1", defaultPage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(got))
	}
	if got[0].Request.ID != "req-new" || got[1].Request.ID != "req-old" {
		t.Errorf("must be newest first, got %s, %s", got[0].Request.ID, got[1].Request.ID)
	}
}

func TestRequestService_GetUserRequests_JoinsAnswers(t *testing.T) {
	_, _, svc := requestFixtures()

	got, err := svc.GetUserRequests(context.Background(), "u-1", defaultPage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var answered *ports.RequestDetail
	for _, d := range got {
		if d.Request.ID == "req-new" {
			answered = d
		}
	}
	if answered == nil {
		t.Fatal("req-new missing")
	}
	if len(answered.Items) != 1 || answered.Items[0].ID != "item-1" {
		t.Errorf("answering item missing: %+v", answered.Items)
	}
}

func TestRequestService_GetAllRequests_ExcludesOwn(t *testing.T) {
	_, _, svc := requestFixtures()

	got, err := svc.GetAllRequests(context.Background(), "u-1", defaultPage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Request.ID != "req-other" {
		t.Errorf("must list only other users' requests, got %+v", got)
	}
}

func TestRequestService_Get_Success(t *testing.T) {
	_, _, svc := requestFixtures()

	// Any known user may fetch any request.
	d, err := svc.Get(context.Background(), "u-2", "req-new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Request.Description != "need a ladder" {
		t.Errorf("wrong request: %+v", d.Request)
	}
	if len(d.Items) != 1 {
		t.Errorf("answering items missing: %+v", d.Items)
	}
}

func TestRequestService_Get_Unknown(t *testing.T) {
	_, _, svc := requestFixtures()

	_, err := svc.Get(context.Background(), "u-1", "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Request Id=ghost") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestRequestService_Get_UnknownUser(t *testing.T) {
	_, _, svc := requestFixtures()

	_, err := svc.Get(context.Background(), "ghost", "req-new")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "User Id=ghost") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
