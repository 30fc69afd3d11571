package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rajudas/field-sales-api/internal/entity"
)

func validSubmitInput() SubmitVisitInput {
	fix := entity.GeoFix{Latitude: 12.34, Longitude: 56.78, AccuracyM: 10, Source: "gps"}
	return SubmitVisitInput{
		SRName:         "RAJU DAS",
		Username:       "Raju123",
		StoreName:      "Acme Mart",
		VisitType:      entity.VisitTypeNew,
		StoreCategory:  "MT",
		PhoneNumber:    "555-0100",
		LeadType:       "HOT",
		Products:       []string{"CIGARETTE"},
		CapturedPhoto:  []byte{0xFF, 0xD8, 0xFF},
		LocationAnswer: entity.LocationRecordedYes,
		Location:       &fix,
	}
}

func newSubmitUC(repo *MockVisitRepository) *SubmitVisitUseCase {
	uc := NewSubmitVisitUseCase(repo, &fakeNormalizer{}, nil)
	uc.Now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	}
	return uc
}

func TestSubmitVisitSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)

	var saved *entity.VisitRecord
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.VisitRecord)
	}).Return(42, nil)

	uc := newSubmitUC(repo)
	output, err := uc.Execute(ctx, validSubmitInput())

	assert.NoError(t, err)
	assert.Equal(t, 42, output.ID)
	assert.Equal(t, "https://www.google.com/maps?q=12.34,56.78", output.MapsURL)
	assert.Equal(t, "Saved with ID: 42", output.Message)

	assert.Equal(t, "CIGARETTE", saved.Products)
	assert.Equal(t, "2026-03-14", saved.VisitDate)
	assert.Equal(t, "15:09:26", saved.VisitTime)
	assert.Equal(t, "data:image/jpeg;base64,dGVzdA==", saved.ImageData)
	assert.Equal(t, 12.34, *saved.Latitude)
	assert.Equal(t, 56.78, *saved.Longitude)
}

func TestSubmitVisitNoPhotoRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)

	input := validSubmitInput()
	input.CapturedPhoto = nil
	input.UploadedPhoto = nil

	uc := newSubmitUC(repo)
	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	var ve ValidationErrors
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Messages(), "Photograph is required.")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitVisitCollectsAllViolations(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)

	input := SubmitVisitInput{
		VisitType:      entity.VisitTypeNew,
		LeadType:       "HOT",
		LocationAnswer: entity.LocationRecordedNo,
	}

	uc := newSubmitUC(repo)
	_, err := uc.Execute(ctx, input)

	var ve ValidationErrors
	assert.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		"Store Name is required.",
		"Phone Number is required.",
		"Photograph is required.",
		"Select at least one Product.",
	}, ve.Messages())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitVisitYesAnswerWithoutCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)

	input := validSubmitInput()
	input.Location = nil

	uc := newSubmitUC(repo)
	_, err := uc.Execute(ctx, input)

	var ve ValidationErrors
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Messages(), "You said YES to location, but none is recorded. Please check 'Record Location'.")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitVisitNoAnswerWithoutCoordinatesIsFine(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)

	var saved *entity.VisitRecord
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.VisitRecord)
	}).Return(7, nil)

	input := validSubmitInput()
	input.Location = nil
	input.LocationAnswer = entity.LocationRecordedNo

	uc := newSubmitUC(repo)
	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, 7, output.ID)
	assert.Empty(t, output.MapsURL)
	assert.Nil(t, saved.Latitude)
	assert.Nil(t, saved.Longitude)
}

func TestSubmitVisitCapturedPhotoWins(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)
	repo.On("Create", ctx, mock.Anything).Return(1, nil)

	captured := 0
	uploaded := 0
	normalizer := normalizerFunc(func(data []byte) (string, error) {
		if string(data) == "captured" {
			captured++
		} else {
			uploaded++
		}
		return "data:image/jpeg;base64,eA==", nil
	})

	uc := NewSubmitVisitUseCase(repo, normalizer, nil)
	input := validSubmitInput()
	input.CapturedPhoto = []byte("captured")
	input.UploadedPhoto = []byte("uploaded")

	_, err := uc.Execute(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, 1, captured)
	assert.Equal(t, 0, uploaded)
}

func TestSubmitVisitPersistenceErrorPassedThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)
	repo.On("Create", ctx, mock.Anything).Return(0, &entity.PersistenceError{Op: "create visit", Err: errors.New("connection refused")})

	uc := newSubmitUC(repo)
	output, err := uc.Execute(ctx, validSubmitInput())

	assert.Nil(t, output)
	var pe *entity.PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "connection refused")
}

func TestSubmitVisitPublishesReminder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)
	repo.On("Create", ctx, mock.Anything).Return(9, nil)

	producer := new(MockReminderPublisher)
	producer.On("PublishReminder", ctx, mock.Anything).Return(nil)

	uc := newSubmitUC(repo)
	uc.Queue = producer

	input := validSubmitInput()
	input.FollowUpDate = "2026-04-01"

	_, err := uc.Execute(ctx, input)
	assert.NoError(t, err)
	producer.AssertCalled(t, "PublishReminder", ctx, mock.Anything)
}

func TestSubmitVisitReminderFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVisitRepository)
	repo.On("Create", ctx, mock.Anything).Return(9, nil)

	producer := new(MockReminderPublisher)
	producer.On("PublishReminder", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := newSubmitUC(repo)
	uc.Queue = producer

	input := validSubmitInput()
	input.FollowUpDate = "2026-04-01"

	output, err := uc.Execute(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, 9, output.ID)
}

// normalizerFunc adapts a func to the PhotoNormalizer interface.
type normalizerFunc func([]byte) (string, error)

func (f normalizerFunc) Normalize(data []byte) (string, error) {
	return f(data)
}
