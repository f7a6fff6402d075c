package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/repo/mongodb"
)

type ComplaintUsecase interface {
	Raise(ctx context.Context, req models.RaiseComplaintRequest) (*models.Complaint, error)
	List(ctx context.Context) ([]*models.Complaint, error)
	Get(ctx context.Context, id string) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Complaint, error)
	Delete(ctx context.Context, id string) error
}

type complaintUsecase struct {
	complaintRepo mongodb.ComplaintRepository
}

func NewComplaintUsecase(complaintRepo mongodb.ComplaintRepository) ComplaintUsecase {
	return &complaintUsecase{complaintRepo: complaintRepo}
}

func (uc *complaintUsecase) Raise(ctx context.Context, req models.RaiseComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Mobile:       req.Mobile,
		Address:      req.Address,
		Message:      req.Message,
		Job:          req.Job,
		DOB:          req.DOB,
		Age:          req.Age,
		AnnualIncome: req.AnnualIncome,
		Status:       models.ComplaintStatusPending,
	}
	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("raise complaint: %w", err)
	}
	return complaint, nil
}

func (uc *complaintUsecase) List(ctx context.Context) ([]*models.Complaint, error) {
	return uc.complaintRepo.List(ctx)
}

func (uc *complaintUsecase) Get(ctx context.Context, id string) (*models.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return uc.complaintRepo.GetByID(ctx, oid)
}

func (uc *complaintUsecase) UpdateStatus(ctx context.Context, id, status string) (*models.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return uc.complaintRepo.UpdateStatus(ctx, oid, status)
}

func (uc *complaintUsecase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}
	return uc.complaintRepo.Delete(ctx, oid)
}
