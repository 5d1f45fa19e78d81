package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

type stubCommentRepo struct {
	byID map[string]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byID: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCommentRepo) FindByItem(_ context.Context, itemID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.byID {
		if c.ItemID == itemID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

type stubRequestRepo struct {
	byID map[string]*domain.ItemRequest
}

func newStubRequestRepo(requests ...*domain.ItemRequest) *stubRequestRepo {
	r := &stubRequestRepo{byID: make(map[string]*domain.ItemRequest)}
	for _, req := range requests {
		r.byID[req.ID] = req
	}
	return r
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.ItemRequest) error {
	clone := *req
	r.byID[req.ID] = &clone
	return nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.ItemRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) FindByRequester(_ context.Context, requesterID string, page ports.Page) ([]*domain.ItemRequest, error) {
	return r.filter(func(req *domain.ItemRequest) bool { return req.RequesterID == requesterID }, page), nil
}

func (r *stubRequestRepo) FindByOtherRequesters(_ context.Context, requesterID string, page ports.Page) ([]*domain.ItemRequest, error) {
	return r.filter(func(req *domain.ItemRequest) bool { return req.RequesterID != requesterID }, page), nil
}

func (r *stubRequestRepo) filter(pred func(*domain.ItemRequest) bool, page ports.Page) []*domain.ItemRequest {
	var out []*domain.ItemRequest
	for _, req := range r.byID {
		if pred(req) {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return slicePage(out, page)
}

func itemFixtures() (*stubItemRepo, *stubBookingRepo, *stubCommentRepo, *stubRequestRepo, *ItemService) {
	users := newStubUserRepo(
		&domain.User{ID: "owner-1", Name: "Olga", Email: "olga@example.com"},
		&domain.User{ID: "booker-1", Name: "Boris", Email: "boris@example.com"},
		&domain.User{ID: "other-1", Name: "Nina", Email: "nina@example.com"},
	)
	items := newStubItemRepo(
		&domain.Item{ID: "item-1", Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: "owner-1"},
		&domain.Item{ID: "item-2", Name: "Ladder", Description: "5m ladder", Available: false, OwnerID: "owner-1"},
	)
	bookings := newStubBookingRepo()
	comments := newStubCommentRepo()
	requests := newStubRequestRepo()
	svc := NewItemService(items, bookings, users, comments, requests, zerolog.Nop())
	return items, bookings, comments, requests, svc
}

func TestItemService_Create_Success(t *testing.T) {
	items, _, _, _, svc := itemFixtures()

	item, err := svc.Create(context.Background(), "owner-1", ports.CreateItemInput{
		Name:        "Saw",
		Description: "Hand saw",
		Available:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.OwnerID != "owner-1" {
		t.Errorf("owner not set: %q", item.OwnerID)
	}
	if _, err := items.FindByID(context.Background(), item.ID); err != nil {
		t.Errorf("item not persisted: %v", err)
	}
}

func TestItemService_Create_UnknownOwner(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	_, err := svc.Create(context.Background(), "ghost", ports.CreateItemInput{Name: "Saw"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "User Id=ghost") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestItemService_Create_LinksExistingRequest(t *testing.T) {
	_, _, _, requests, svc := itemFixtures()
	requests.byID["req-1"] = &domain.ItemRequest{ID: "req-1", Description: "need a saw", RequesterID: "other-1", Created: testNow}

	item, err := svc.Create(context.Background(), "owner-1", ports.CreateItemInput{
		Name: "Saw", Available: true, RequestID: "req-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.RequestID != "req-1" {
		t.Errorf("request link lost: %q", item.RequestID)
	}
}

func TestItemService_Create_UnknownRequest(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	_, err := svc.Create(context.Background(), "owner-1", ports.CreateItemInput{
		Name: "Saw", Available: true, RequestID: "ghost",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Request Id=ghost") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestItemService_Get_OwnerSeesAdjacentBookings(t *testing.T) {
	_, bookings, _, _, svc := itemFixtures()
	seedBooking(bookings, "bk-past", testNow.Add(-3*time.Hour), testNow.Add(-2*time.Hour), domain.StatusApproved)
	seedBooking(bookings, "bk-next", testNow.Add(2*time.Hour), testNow.Add(3*time.Hour), domain.StatusApproved)

	detail, err := svc.Get(context.Background(), "owner-1", "item-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.LastBooking == nil || detail.LastBooking.ID != "bk-past" {
		t.Errorf("last booking wrong: %+v", detail.LastBooking)
	}
	if detail.NextBooking == nil || detail.NextBooking.ID != "bk-next" {
		t.Errorf("next booking wrong: %+v", detail.NextBooking)
	}
}

func TestItemService_Get_NonOwnerSeesNoBookings(t *testing.T) {
	_, bookings, _, _, svc := itemFixtures()
	seedBooking(bookings, "bk-past", testNow.Add(-3*time.Hour), testNow.Add(-2*time.Hour), domain.StatusApproved)

	detail, err := svc.Get(context.Background(), "other-1", "item-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.LastBooking != nil || detail.NextBooking != nil {
		t.Error("non-owner must not see booking slots")
	}
}

func TestItemService_Get_UnknownItem(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	_, err := svc.Get(context.Background(), "owner-1", "ghost", testNow)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Item Id=ghost") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestItemService_Search_BlankTextReturnsEmpty(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	for _, text := range []string{"", "   "} {
		got, err := svc.Search(context.Background(), text, defaultPage())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Error("blank search must return an empty slice, not nil")
		}
		if len(got) != 0 {
			t.Errorf("blank search must match nothing, got %d items", len(got))
		}
	}
}

func TestItemService_Search_OnlyAvailableItems(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	// Both items mention no common word, so search broadly.
	got, err := svc.Search(context.Background(), "ladder", defaultPage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unavailable items must be excluded from search, got %d", len(got))
	}
}

func TestItemService_Update_PartialPatch(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	newName := "Power drill"
	item, err := svc.Update(context.Background(), "owner-1", "item-1", ports.UpdateItemInput{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Power drill" {
		t.Errorf("name not patched: %q", item.Name)
	}
	if item.Description != "Cordless drill" || !item.Available {
		t.Errorf("untouched fields must survive the patch: %+v", item)
	}
}

func TestItemService_Update_NonOwnerRejected(t *testing.T) {
	_, _, _, _, svc := itemFixtures()

	newName := "Mine now"
	_, err := svc.Update(context.Background(), "other-1", "item-1", ports.UpdateItemInput{Name: &newName})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("non-owner update must be NotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "User id=other-1 is not owner of item item-1") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestItemService_Delete_NonOwnerRejected(t *testing.T) {
	items, _, _, _, svc := itemFixtures()

	err := svc.Delete(context.Background(), "other-1", "item-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("non-owner delete must be NotFound, got %v", err)
	}
	if _, err := items.FindByID(context.Background(), "item-1"); err != nil {
		t.Error("item must survive a rejected delete")
	}
}

func TestItemService_CreateComment_RequiresFinishedBooking(t *testing.T) {
	_, bookings, _, _, svc := itemFixtures()

	// A future booking does not qualify.
	seedBooking(bookings, "bk-future", testNow.Add(time.Hour), testNow.Add(2*time.Hour), domain.StatusApproved)

	_, err := svc.CreateComment(context.Background(), "booker-1", "item-1", ports.CreateCommentInput{Text: "great"}, testNow)
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "User id=booker-1 did not use item id=item-1") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestItemService_CreateComment_AfterFinishedBooking(t *testing.T) {
	_, bookings, comments, _, svc := itemFixtures()
	seedBooking(bookings, "bk-done", testNow.Add(-3*time.Hour), testNow.Add(-2*time.Hour), domain.StatusApproved)

	c, err := svc.CreateComment(context.Background(), "booker-1", "item-1", ports.CreateCommentInput{Text: "worked well"}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.AuthorName != "Boris" {
		t.Errorf("author name must be snapshotted, got %q", c.AuthorName)
	}
	if !c.Created.Equal(testNow) {
		t.Errorf("created must be the request instant, got %v", c.Created)
	}
	if len(comments.byID) != 1 {
		t.Error("comment not persisted")
	}
}

func TestItemService_Get_IncludesCommentsForEveryone(t *testing.T) {
	_, _, comments, _, svc := itemFixtures()
	comments.byID["c-1"] = &domain.Comment{ID: "c-1", Text: "solid", ItemID: "item-1", AuthorID: "booker-1", AuthorName: "Boris", Created: testNow.Add(-time.Hour)}

	detail, err := svc.Get(context.Background(), "other-1", "item-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Comments) != 1 || detail.Comments[0].Text != "solid" {
		t.Errorf("comments missing from detail: %+v", detail.Comments)
	}
}

func TestItemService_GetUserItems_IncludesSlotsAndComments(t *testing.T) {
	_, bookings, comments, _, svc := itemFixtures()
	seedBooking(bookings, "bk-done", testNow.Add(-3*time.Hour), testNow.Add(-2*time.Hour), domain.StatusApproved)
	comments.byID["c-1"] = &domain.Comment{ID: "c-1", Text: "solid", ItemID: "item-1", AuthorID: "booker-1", AuthorName: "Boris", Created: testNow.Add(-time.Hour)}

	got, err := svc.GetUserItems(context.Background(), "owner-1", testNow, defaultPage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("owner has 2 items, got %d", len(got))
	}
	var drill *ports.ItemDetail
	for _, d := range got {
		if d.Item.ID == "item-1" {
			drill = d
		}
	}
	if drill == nil {
		t.Fatal("item-1 missing from listing")
	}
	if drill.LastBooking == nil || drill.LastBooking.ID != "bk-done" {
		t.Errorf("last booking missing: %+v", drill.LastBooking)
	}
	if len(drill.Comments) != 1 {
		t.Errorf("comments missing: %+v", drill.Comments)
	}
}
