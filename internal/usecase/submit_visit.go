package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/infra/queue"
)

// SubmitVisitUseCase assembles and persists a new visit record. Validation
// runs first and blocks the write entirely; the record itself is built from
// user input, the resolved location and server-side clock stamps.
type SubmitVisitUseCase struct {
	Repo   VisitRepositoryInterface
	Photos PhotoNormalizer
	Queue  ReminderPublisherInterface // optional, best-effort

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewSubmitVisitUseCase(repo VisitRepositoryInterface, photos PhotoNormalizer, producer ReminderPublisherInterface) *SubmitVisitUseCase {
	return &SubmitVisitUseCase{
		Repo:   repo,
		Photos: photos,
		Queue:  producer,
		Now:    time.Now,
	}
}

func (uc *SubmitVisitUseCase) Execute(ctx context.Context, input SubmitVisitInput) (*SubmitVisitOutput, error) {
	if errs := ValidateSubmitVisitInput(input); len(errs) > 0 {
		return nil, errs
	}

	// Captured photo checked first; uploaded is the fallback.
	photo := input.CapturedPhoto
	if len(photo) == 0 {
		photo = input.UploadedPhoto
	}

	imageData, err := uc.Photos.Normalize(photo)
	if err != nil {
		return nil, fmt.Errorf("processing photograph: %w", err)
	}

	record := &entity.VisitRecord{
		SRName:                 input.SRName,
		Username:               input.Username,
		StoreName:              input.StoreName,
		VisitType:              input.VisitType,
		StoreCategory:          entity.NormalizeCategory(input.StoreCategory),
		PhoneNumber:            input.PhoneNumber,
		LeadType:               input.LeadType,
		FollowUpDate:           input.FollowUpDate,
		Products:               entity.JoinProducts(input.Products),
		OrderDetails:           input.OrderDetails,
		LocationRecordedAnswer: input.LocationAnswer,
		ImageData:              imageData,
	}

	if input.Location != nil {
		lat, lon := input.Location.Latitude, input.Location.Longitude
		record.Latitude = &lat
		record.Longitude = &lon
		record.MapsURL = entity.MapsURL(lat, lon)
	}

	now := uc.Now()
	record.VisitDate = now.Format("2006-01-02")
	record.VisitTime = now.Format("15:04:05")

	id, err := uc.Repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if input.FollowUpDate != "" && uc.Queue != nil {
		payload := queue.ReminderPayload{
			VisitID:      id,
			StoreName:    input.StoreName,
			SRName:       input.SRName,
			Username:     input.Username,
			PhoneNumber:  input.PhoneNumber,
			LeadType:     input.LeadType,
			FollowUpDate: input.FollowUpDate,
		}
		// A lost reminder never fails the submission.
		if err := uc.Queue.PublishReminder(ctx, payload); err != nil {
			log.Printf("[SubmitVisit] reminder publish failed for visit %d: %v", id, err)
		}
	}

	return &SubmitVisitOutput{
		ID:      id,
		MapsURL: record.MapsURL,
		Message: fmt.Sprintf("Saved with ID: %d", id),
	}, nil
}
