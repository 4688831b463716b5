package projections

import (
	"context"
	"errors"
	"testing"
	"time"

	userStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/communityuser"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

type memQueueStore struct {
	users []communityuser.CommunityUser
}

func (s *memQueueStore) filtered(filter userStore.ListFilter) []communityuser.CommunityUser {
	var out []communityuser.CommunityUser
	for _, u := range s.users {
		if filter.Status != "" && u.ApprovalStatus != filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *memQueueStore) List(_ context.Context, filter userStore.ListFilter) ([]communityuser.CommunityUser, error) {
	out := s.filtered(filter)
	if filter.Offset > len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *memQueueStore) Count(_ context.Context, filter userStore.ListFilter) (int, error) {
	return len(s.filtered(filter)), nil
}

func queueFixture() *memQueueStore {
	return &memQueueStore{users: []communityuser.CommunityUser{
		{ID: "cu-1", FirstName: "Ana", LastName: "Reed", Email: "ana@example.com", ApprovalStatus: communityuser.StatusPending, CreatedAt: time.Now()},
		{ID: "cu-2", FirstName: "Ben", LastName: "Ngata", Email: "ben@example.com", ApprovalStatus: communityuser.StatusApproved, DecidedBy: "admin-001", CreatedAt: time.Now()},
		{ID: "cu-3", FirstName: "Cara", LastName: "Lim", Email: "cara@example.com", ApprovalStatus: communityuser.StatusPending, CreatedAt: time.Now()},
	}}
}

func TestQueryApprovalQueue_StatusFilter(t *testing.T) {
	result, err := QueryApprovalQueue(context.Background(), ApprovalQueueInput{
		Status: communityuser.StatusPending,
	}, ApprovalQueueDeps{UserStore: queueFixture()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 pending entries, got %d", len(result.Entries))
	}
	for _, e := range result.Entries {
		if e.ApprovalStatus != communityuser.StatusPending {
			t.Errorf("entry %s has status %q", e.ID, e.ApprovalStatus)
		}
	}
}

func TestQueryApprovalQueue_EmptyStatusListsAll(t *testing.T) {
	result, err := QueryApprovalQueue(context.Background(), ApprovalQueueInput{}, ApprovalQueueDeps{UserStore: queueFixture()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 3 {
		t.Errorf("expected all 3 entries, got %d", len(result.Entries))
	}
	if result.Entries[1].FullName != "Ben Ngata" {
		t.Errorf("expected full name, got %q", result.Entries[1].FullName)
	}
}

func TestQueryApprovalQueue_InvalidStatus(t *testing.T) {
	_, err := QueryApprovalQueue(context.Background(), ApprovalQueueInput{
		Status: "banned",
	}, ApprovalQueueDeps{UserStore: queueFixture()})
	if !errors.Is(err, communityuser.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}
