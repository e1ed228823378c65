package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/entity"
	"health-scheduling-api/internal/domain/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var consultationNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

type consultationFixture struct {
	usecase          ConsultationUsecase
	consultationRepo *MockConsultationRepository
	professionalRepo *MockProfessionalRepository
	auditService     *MockAuditService
}

func newConsultationFixture() *consultationFixture {
	f := &consultationFixture{
		consultationRepo: new(MockConsultationRepository),
		professionalRepo: new(MockProfessionalRepository),
		auditService:     new(MockAuditService),
	}
	f.usecase = NewConsultationUsecase(&fakeTransactor{}, quietLogger(), f.consultationRepo, f.professionalRepo, f.auditService, 20, fixedClock(consultationNow))
	f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.auditService.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func storedConsultation(id uint, scheduledAt time.Time, notes string) *entity.Consultation {
	return &entity.Consultation{
		ID:             id,
		ScheduledAt:    scheduledAt,
		ProfessionalID: 1,
		Notes:          notes,
		Professional:   entity.Professional{ID: 1, SocialName: "Dra. Ana", Profession: "Cardiologia"},
	}
}

func TestCreateConsultation_Success(t *testing.T) {
	f := newConsultationFixture()
	scheduledAt := consultationNow.Add(48 * time.Hour)

	f.professionalRepo.On("Exists", mock.Anything, uint(1)).Return(true, nil)
	f.consultationRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Consultation) bool {
		return c.ProfessionalID == 1 && c.ScheduledAt.Equal(scheduledAt) && c.Notes == "Retorno"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Consultation).ID = 7
	}).Return(nil)
	f.consultationRepo.On("FindByID", mock.Anything, uint(7)).Return(storedConsultation(7, scheduledAt, "Retorno"), nil)

	resp, err := f.usecase.CreateConsultation(context.Background(), &dto.ConsultationRequest{
		ScheduledAt:    timePtr(scheduledAt),
		ProfessionalID: uintPtr(1),
		Notes:          strPtr("<em>Retorno</em>"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), resp.ID)
	assert.True(t, resp.IsFuture)
	require.NotNil(t, resp.Professional)
	assert.Equal(t, "Dra. Ana", resp.Professional.SocialName)
	f.consultationRepo.AssertExpectations(t)
}

func TestCreateConsultation_NotesDefaultToEmpty(t *testing.T) {
	f := newConsultationFixture()

	f.professionalRepo.On("Exists", mock.Anything, uint(1)).Return(true, nil)
	f.consultationRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Consultation) bool {
		return c.Notes == ""
	})).Return(nil)
	f.consultationRepo.On("FindByID", mock.Anything, uint(0)).Return(storedConsultation(0, consultationNow, ""), nil)

	resp, err := f.usecase.CreateConsultation(context.Background(), &dto.ConsultationRequest{
		ScheduledAt:    timePtr(consultationNow),
		ProfessionalID: uintPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, "", resp.Notes)
	assert.False(t, resp.IsFuture, "a consultation at exactly now is not in the future")
}

func TestCreateConsultation_PastDateRejected(t *testing.T) {
	f := newConsultationFixture()
	f.professionalRepo.On("Exists", mock.Anything, uint(1)).Return(true, nil)

	_, err := f.usecase.CreateConsultation(context.Background(), &dto.ConsultationRequest{
		ScheduledAt:    timePtr(consultationNow.Add(-time.Minute)),
		ProfessionalID: uintPtr(1),
	})

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{"A consultation cannot be scheduled in the past."}, errs["scheduled_at"])
	f.consultationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateConsultation_MissingFields(t *testing.T) {
	f := newConsultationFixture()

	_, err := f.usecase.CreateConsultation(context.Background(), &dto.ConsultationRequest{})

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{"This field is required."}, errs["scheduled_at"])
	assert.Equal(t, []string{"This field is required."}, errs["professional_id"])
	f.professionalRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestCreateConsultation_UnknownProfessional(t *testing.T) {
	f := newConsultationFixture()
	f.professionalRepo.On("Exists", mock.Anything, uint(99)).Return(false, nil)

	_, err := f.usecase.CreateConsultation(context.Background(), &dto.ConsultationRequest{
		ScheduledAt:    timePtr(consultationNow.Add(time.Hour)),
		ProfessionalID: uintPtr(99),
	})

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{`Invalid pk "99" - object does not exist.`}, errs["professional_id"])
}

func TestCreateConsultation_ProfessionalRemovedConcurrently(t *testing.T) {
	f := newConsultationFixture()
	f.professionalRepo.On("Exists", mock.Anything, uint(1)).Return(true, nil)
	f.consultationRepo.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_consultations_professional"})

	_, err := f.usecase.CreateConsultation(context.Background(), &dto.ConsultationRequest{
		ScheduledAt:    timePtr(consultationNow.Add(time.Hour)),
		ProfessionalID: uintPtr(1),
	})

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "professional_id")
}

func TestGetConsultation_NotFound(t *testing.T) {
	f := newConsultationFixture()
	f.consultationRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, nil)

	_, err := f.usecase.GetConsultation(context.Background(), 5)

	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestListConsultations_PassesFilter(t *testing.T) {
	f := newConsultationFixture()
	day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	query := dto.ConsultationListQuery{ProfessionalID: uintPtr(1), Date: &day, Search: "ana", Ordering: "scheduled_at", Page: 1}
	rows := []entity.Consultation{*storedConsultation(3, day.Add(9*time.Hour), "")}

	f.consultationRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(filter entity.ConsultationFilter) bool {
		return *filter.ProfessionalID == 1 && filter.Date.Equal(day) && filter.Search == "ana" && filter.Ordering == "scheduled_at"
	}), entity.Page{Number: 1, Size: 20}).Return(rows, int64(1), nil)

	resp, err := f.usecase.ListConsultations(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, resp.Consultations, 1)
	assert.Equal(t, "Dra. Ana", resp.Consultations[0].ProfessionalName)
	assert.True(t, resp.Consultations[0].IsFuture)
	assert.Equal(t, int64(1), resp.Total)
}

func TestListByProfessional_EmptyForUnknownProfessional(t *testing.T) {
	f := newConsultationFixture()
	f.consultationRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(filter entity.ConsultationFilter) bool {
		return filter.ProfessionalID != nil && *filter.ProfessionalID == 404
	}), entity.Page{Number: 1, Size: 20}).Return([]entity.Consultation{}, int64(0), nil)

	resp, err := f.usecase.ListByProfessional(context.Background(), 404, 0)

	require.NoError(t, err)
	assert.Empty(t, resp.Consultations)
	assert.NotNil(t, resp.Consultations)
	assert.Equal(t, int64(0), resp.Total)
}

func TestListByProfessional_PagePastEnd(t *testing.T) {
	f := newConsultationFixture()
	f.consultationRepo.On("FindAll", mock.Anything, mock.Anything, entity.Page{Number: 2, Size: 20}).
		Return([]entity.Consultation{}, int64(0), nil)

	resp, err := f.usecase.ListByProfessional(context.Background(), 404, 2)

	assert.ErrorIs(t, err, ErrInvalidPage)
	assert.Nil(t, resp)
}

func TestUpdateConsultation_AllowsPastDate(t *testing.T) {
	f := newConsultationFixture()
	past := consultationNow.Add(-72 * time.Hour)
	existing := storedConsultation(4, consultationNow.Add(time.Hour), "nota")

	f.consultationRepo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil).Once()
	f.consultationRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Consultation) bool {
		return c.ScheduledAt.Equal(past) && c.Notes == "nota"
	})).Return(nil)
	f.consultationRepo.On("FindByID", mock.Anything, uint(4)).Return(storedConsultation(4, past, "nota"), nil).Once()

	resp, err := f.usecase.UpdateConsultation(context.Background(), 4, &dto.ConsultationRequest{ScheduledAt: timePtr(past)}, true)

	require.NoError(t, err)
	assert.False(t, resp.IsFuture)
	f.professionalRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdateConsultation_FullRequiresFields(t *testing.T) {
	f := newConsultationFixture()
	f.consultationRepo.On("FindByID", mock.Anything, uint(4)).Return(storedConsultation(4, consultationNow, ""), nil)

	_, err := f.usecase.UpdateConsultation(context.Background(), 4, &dto.ConsultationRequest{Notes: strPtr("x")}, false)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.ElementsMatch(t, []string{"professional_id", "scheduled_at"}, errs.Fields())
}

func TestUpdateConsultation_ChangedProfessionalMustExist(t *testing.T) {
	f := newConsultationFixture()
	f.consultationRepo.On("FindByID", mock.Anything, uint(4)).Return(storedConsultation(4, consultationNow, ""), nil)
	f.professionalRepo.On("Exists", mock.Anything, uint(2)).Return(false, nil)

	_, err := f.usecase.UpdateConsultation(context.Background(), 4, &dto.ConsultationRequest{ProfessionalID: uintPtr(2)}, true)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{`Invalid pk "2" - object does not exist.`}, errs["professional_id"])
	f.consultationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateConsultation_NotFound(t *testing.T) {
	f := newConsultationFixture()
	f.consultationRepo.On("FindByID", mock.Anything, uint(8)).Return(nil, nil)

	_, err := f.usecase.UpdateConsultation(context.Background(), 8, &dto.ConsultationRequest{}, false)

	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestDeleteConsultation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newConsultationFixture()
		f.consultationRepo.On("FindByID", mock.Anything, uint(3)).Return(nil, nil)

		assert.ErrorIs(t, f.usecase.DeleteConsultation(context.Background(), 3), ErrConsultationNotFound)
	})

	t.Run("past consultation deleted", func(t *testing.T) {
		f := newConsultationFixture()
		f.consultationRepo.On("FindByID", mock.Anything, uint(3)).Return(storedConsultation(3, consultationNow.Add(-time.Hour), ""), nil)
		f.consultationRepo.On("Delete", mock.Anything, uint(3)).Return(int64(1), nil)

		assert.NoError(t, f.usecase.DeleteConsultation(context.Background(), 3))
		f.auditService.AssertCalled(t, "LogDelete", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionConsultationDelete, "consultation", "3", mock.Anything)
	})
}
