package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/namanpunn/logikxmind-uat/internal/models"
)

type fakeComplaintRepo struct {
	complaints map[primitive.ObjectID]*models.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: map[primitive.ObjectID]*models.Complaint{}}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *models.Complaint) error {
	complaint.ID = primitive.NewObjectID()
	r.complaints[complaint.ID] = complaint
	return nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Complaint, error) {
	if c, ok := r.complaints[id]; ok {
		return c, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeComplaintRepo) List(_ context.Context) ([]*models.Complaint, error) {
	out := make([]*models.Complaint, 0, len(r.complaints))
	for _, c := range r.complaints {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeComplaintRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	c.Status = status
	return c, nil
}

func (r *fakeComplaintRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.complaints[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.complaints, id)
	return nil
}

func TestComplaintLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeComplaintRepo()
	uc := NewComplaintUsecase(repo)

	raised, err := uc.Raise(ctx, models.RaiseComplaintRequest{
		Mobile:  "9876543210",
		Address: "12 MG Road, Pune",
		Message: "Mentor session never happened",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusPending, raised.Status)
	assert.False(t, raised.ID.IsZero())

	got, err := uc.Get(ctx, raised.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, raised.Mobile, got.Mobile)

	updated, err := uc.UpdateStatus(ctx, raised.ID.Hex(), "resolved")
	require.NoError(t, err)
	assert.Equal(t, "resolved", updated.Status)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uc.Delete(ctx, raised.ID.Hex()))
	_, err = uc.Get(ctx, raised.ID.Hex())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestComplaintInvalidIDs(t *testing.T) {
	ctx := context.Background()
	uc := NewComplaintUsecase(newFakeComplaintRepo())

	_, err := uc.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = uc.UpdateStatus(ctx, "not-a-hex-id", "resolved")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, "not-a-hex-id"), models.ErrNotFound)

	_, err = uc.Get(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
