package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"waste-pickup/internal/data/entity"
	"waste-pickup/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePickupRepo struct {
	created   []*entity.PickupRequest
	createErr error

	byUser []*entity.PickupRequest
	all    []*entity.PickupWithResident

	updatedID     int64
	updatedStatus entity.PickupStatus
	affected      int64
	updateErr     error
}

func (f *fakePickupRepo) Create(ctx context.Context, pr *entity.PickupRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	pr.ID = int64(len(f.created) + 1)
	f.created = append(f.created, pr)
	return nil
}

func (f *fakePickupRepo) FindByUser(ctx context.Context, userID int64) ([]*entity.PickupRequest, error) {
	return f.byUser, nil
}

func (f *fakePickupRepo) FindAllWithResident(ctx context.Context) ([]*entity.PickupWithResident, error) {
	return f.all, nil
}

func (f *fakePickupRepo) UpdateStatus(ctx context.Context, id int64, status entity.PickupStatus) (int64, error) {
	f.updatedID = id
	f.updatedStatus = status
	return f.affected, f.updateErr
}

func (f *fakePickupRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func TestPickupServiceCreate(t *testing.T) {
	repo := &fakePickupRepo{}
	now := time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local)
	svc := NewPickupService(repo, func() time.Time { return now }, zap.NewNop())

	resp, err := svc.Create(context.Background(), &request.CreatePickupRequest{UserID: 2})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Pickup request created", resp.Message)
	assert.EqualValues(t, 1, resp.RequestID)
	assert.Equal(t, "2024-03-09 07:05:03", resp.Timestamp)
	assert.Equal(t, entity.StatusPending, resp.Status)

	require.Len(t, repo.created, 1)
	assert.EqualValues(t, 2, repo.created[0].UserID)
}

func TestPickupServiceCreateRejectsMissingUser(t *testing.T) {
	repo := &fakePickupRepo{}
	svc := NewPickupService(repo, time.Now, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreatePickupRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.created)
}

func TestPickupServiceCreateStoreError(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewPickupService(&fakePickupRepo{createErr: boom}, time.Now, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreatePickupRequest{UserID: 2})
	assert.ErrorIs(t, err, boom)
}

func TestPickupServiceListsNeverNil(t *testing.T) {
	svc := NewPickupService(&fakePickupRepo{}, time.Now, zap.NewNop())

	mine, err := svc.ListForUser(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestPickupServiceUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   entity.PickupStatus
		affected int64
		wantErr  error
	}{
		{name: "completed", status: entity.StatusCompleted, affected: 1},
		{name: "in progress", status: entity.StatusInProgress, affected: 1},
		{name: "missing request is not an error", status: entity.StatusPending, affected: 0},
		{name: "unknown status", status: "DONE", wantErr: ErrValidation},
		{name: "lower case", status: "completed", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePickupRepo{affected: tt.affected}
			svc := NewPickupService(repo, time.Now, zap.NewNop())

			err := svc.UpdateStatus(context.Background(), &request.UpdateStatusRequest{RequestID: 7, Status: tt.status})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.updatedID, "invalid status must not reach the store")
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, 7, repo.updatedID)
			assert.Equal(t, tt.status, repo.updatedStatus)
		})
	}
}
