package credentials

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/skills"
)

type testRepo struct {
	byID   map[int64]Credential
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Credential{}}
}

func (r *testRepo) Save(ctx context.Context, c Credential) (Credential, error) {
	for _, existing := range r.byID {
		if existing.ServiceAnimalID == c.ServiceAnimalID {
			return Credential{}, fmt.Errorf("animal %d: %w", c.ServiceAnimalID, persistence.ErrConflict)
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Credential, error) {
	c, ok := r.byID[id]
	if !ok {
		return Credential{}, persistence.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) GetByAnimalID(ctx context.Context, animalID int64) (Credential, error) {
	for _, c := range r.byID {
		if c.ServiceAnimalID == animalID {
			return c, nil
		}
	}
	return Credential{}, persistence.ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validInput() IssueInput {
	return IssueInput{
		IssuedAt:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		ExpiresAt:       time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
		ServiceAnimalID: 5,
		TrainerID:       3,
		Skills:          []skills.Skill{{ID: 1, Description: "guide"}},
	}
}

func TestService_Issue(t *testing.T) {
	svc := NewService(newTestRepo())

	c, err := svc.Issue(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, int64(5), c.ServiceAnimalID)
	assert.Len(t, c.Skills, 1)
}

func TestService_Issue_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IssueInput)
	}{
		{"missing animal", func(in *IssueInput) { in.ServiceAnimalID = 0 }},
		{"missing trainer", func(in *IssueInput) { in.TrainerID = -1 }},
		{"zero issue date", func(in *IssueInput) { in.IssuedAt = time.Time{} }},
		{"zero expiry date", func(in *IssueInput) { in.ExpiresAt = time.Time{} }},
		{"expiry before issue", func(in *IssueInput) {
			in.ExpiresAt = in.IssuedAt.AddDate(0, 0, -1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newTestRepo())
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Issue(context.Background(), in)
			assert.ErrorIs(t, err, persistence.ErrInvalidInput)
		})
	}
}

func TestService_Issue_SecondCredentialForAnimalConflicts(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Issue(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Issue(context.Background(), validInput())
	assert.ErrorIs(t, err, persistence.ErrConflict)
}

func TestService_Revoke_Twice(t *testing.T) {
	svc := NewService(newTestRepo())

	c, err := svc.Issue(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), c.ID))
	assert.ErrorIs(t, svc.Revoke(context.Background(), c.ID), persistence.ErrNotFound)
}
