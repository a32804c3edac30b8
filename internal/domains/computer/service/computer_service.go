package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/computer/model"
	"catalog-backend/internal/domains/computer/repository"
	"catalog-backend/internal/infrastructure/email"
	"catalog-backend/internal/shared/etag"
	"catalog-backend/internal/shared/fault"
	"catalog-backend/internal/shared/validate"
	"catalog-backend/pkg/logger"
)

// ComputerService implements the same write pipeline as the book domain for
// the computer family: manufacturer and serial number form the natural key,
// and there are no child records to cascade.
type ComputerService struct {
	repo     repository.Repository
	notifier email.Notifier
}

func NewService(repo repository.Repository, notifier email.Notifier) ServiceInterface {
	return &ComputerService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *ComputerService) Create(ctx context.Context, computer *model.Computer) (uuid.UUID, error) {
	if messages := computer.Validate(); len(messages) > 0 {
		return uuid.Nil, &fault.ConstraintViolations{Messages: messages}
	}

	if err := s.checkCreate(ctx, computer); err != nil {
		return uuid.Nil, err
	}

	computer.ID = uuid.New()
	computer.Version = 0

	if err := s.repo.Insert(ctx, computer); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create computer: %w", err)
	}

	// Fire-and-forget: a failed notification never fails the create.
	go s.notifyCreated(*computer)

	return computer.ID, nil
}

func (s *ComputerService) Update(ctx context.Context, id string, computer *model.Computer, version string) (int, error) {
	parsedVersion, err := etag.Parse(version)
	if err != nil {
		return 0, err
	}

	// An unparsable id is treated exactly like an unknown one.
	if !validate.ID(id) {
		return 0, &fault.EntityNotExists{ID: id}
	}

	if messages := computer.Validate(); len(messages) > 0 {
		return 0, &fault.ConstraintViolations{Messages: messages}
	}

	if err := s.checkUpdate(ctx, computer, id); err != nil {
		return 0, err
	}

	stored, err := s.repo.FindByID(ctx, uuid.MustParse(id))
	if err != nil {
		return 0, fmt.Errorf("failed to load computer: %w", err)
	}
	if stored == nil {
		return 0, &fault.EntityNotExists{ID: id}
	}

	if err := etag.CheckCurrent(id, parsedVersion, stored.Version); err != nil {
		return 0, err
	}

	model.ApplyUpdate(stored, *computer)

	newVersion, err := s.repo.Update(ctx, stored)
	if err != nil {
		return 0, err
	}

	return newVersion, nil
}

func (s *ComputerService) Delete(ctx context.Context, id string) (bool, error) {
	if !validate.ID(id) {
		return false, nil
	}

	stored, err := s.repo.FindByID(ctx, uuid.MustParse(id))
	if err != nil {
		return false, fmt.Errorf("failed to load computer: %w", err)
	}
	if stored == nil {
		return false, nil
	}

	affected, err := s.repo.Delete(ctx, stored.ID)
	if err != nil {
		return false, fmt.Errorf("failed to delete computer: %w", err)
	}

	return affected > 0, nil
}

func (s *ComputerService) FindByID(ctx context.Context, id string) (*model.Computer, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return s.repo.FindByID(ctx, parsed)
}

func (s *ComputerService) Find(ctx context.Context, filter model.ComputerFilter) ([]model.Computer, error) {
	return s.repo.Find(ctx, filter)
}

// checkCreate looks up each natural-key field in turn, manufacturer first,
// and returns the first conflict found.
func (s *ComputerService) checkCreate(ctx context.Context, computer *model.Computer) error {
	computers, err := s.repo.FindByField(ctx, "manufacturer", computer.Manufacturer)
	if err != nil {
		return fmt.Errorf("failed to check manufacturer: %w", err)
	}
	if len(computers) > 0 {
		return &fault.NaturalKeyExists{Field: "manufacturer", Value: computer.Manufacturer, ID: computers[0].ID.String()}
	}

	computers, err = s.repo.FindByField(ctx, "serial", computer.Serial)
	if err != nil {
		return fmt.Errorf("failed to check serial: %w", err)
	}
	if len(computers) > 0 {
		return &fault.NaturalKeyExists{Field: "serial", Value: computer.Serial, ID: computers[0].ID.String()}
	}

	return nil
}

func (s *ComputerService) checkUpdate(ctx context.Context, computer *model.Computer, id string) error {
	computers, err := s.repo.FindByField(ctx, "manufacturer", computer.Manufacturer)
	if err != nil {
		return fmt.Errorf("failed to check manufacturer: %w", err)
	}
	if conflict := firstOther(computers, id); conflict != nil {
		return &fault.NaturalKeyExists{Field: "manufacturer", Value: computer.Manufacturer, ID: conflict.ID.String()}
	}

	computers, err = s.repo.FindByField(ctx, "serial", computer.Serial)
	if err != nil {
		return fmt.Errorf("failed to check serial: %w", err)
	}
	if conflict := firstOther(computers, id); conflict != nil {
		return &fault.NaturalKeyExists{Field: "serial", Value: computer.Serial, ID: conflict.ID.String()}
	}

	return nil
}

func firstOther(computers []model.Computer, id string) *model.Computer {
	for i := range computers {
		if computers[i].ID.String() != id {
			return &computers[i]
		}
	}
	return nil
}

func (s *ComputerService) notifyCreated(computer model.Computer) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject := fmt.Sprintf("New computer %s", computer.ID)
	body := fmt.Sprintf("The computer <strong>%s</strong> (%s) has been created",
		computer.Manufacturer, computer.Serial)

	if err := s.notifier.Notify(ctx, subject, body); err != nil {
		logger.Warn("create notification failed", err)
	}
}
