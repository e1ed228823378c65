package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-scheduling-api/internal/converter"
	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/entity"
	"health-scheduling-api/internal/domain/repository"
	"health-scheduling-api/internal/domain/validation"
	"health-scheduling-api/internal/service"
	"health-scheduling-api/pkg/sanitizer"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrConsultationNotFound = errors.New("consultation not found")

const (
	consultationEntity = "consultation"

	msgScheduledInPast = "A consultation cannot be scheduled in the past."
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error)
	ListConsultations(ctx context.Context, query dto.ConsultationListQuery) (*dto.ConsultationListResponse, error)
	ListByProfessional(ctx context.Context, professionalID uint, page int) (*dto.ConsultationListResponse, error)
	UpdateConsultation(ctx context.Context, id uint, req *dto.ConsultationRequest, partial bool) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, id uint) error
}

type consultationUsecase struct {
	transactor       repository.Transactor
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
	pageSize         int
	now              func() time.Time
}

func NewConsultationUsecase(
	transactor repository.Transactor,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
	pageSize int,
	now func() time.Time,
) ConsultationUsecase {
	return &consultationUsecase{
		transactor:       transactor,
		log:              log,
		consultationRepo: consultationRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
		pageSize:         pageSize,
		now:              now,
	}
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	now := u.now()
	req.Notes = sanitizer.Pointer(req.Notes)

	var created *entity.Consultation
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		rules := []validation.Rule{
			validation.Required("scheduled_at", req.ScheduledAt != nil),
			validation.Required("professional_id", req.ProfessionalID != nil),
		}
		if req.ScheduledAt != nil {
			rules = append(rules, validation.NotBefore("scheduled_at", *req.ScheduledAt, now, msgScheduledInPast))
		}
		errs := validation.Collect(rules...)
		if req.ProfessionalID != nil {
			if err := u.checkProfessional(tx, *req.ProfessionalID, errs); err != nil {
				return err
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}

		consultation := &entity.Consultation{
			ScheduledAt:    *req.ScheduledAt,
			ProfessionalID: *req.ProfessionalID,
		}
		if req.Notes != nil {
			consultation.Notes = *req.Notes
		}

		if err := u.consultationRepo.Create(tx, consultation); err != nil {
			if isForeignKeyError(err, "professional") {
				return professionalMissing(*req.ProfessionalID)
			}
			u.log.Warnf("Failed to create consultation: %+v", err)
			return err
		}

		reloaded, err := u.consultationRepo.FindByID(tx, consultation.ID)
		if err != nil {
			u.log.Warnf("Failed to find consultation: %+v", err)
			return err
		}
		if reloaded == nil {
			return ErrConsultationNotFound
		}

		// Audit log - create consultation
		if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionConsultationCreate, consultationEntity, formatID(reloaded.ID), converter.ConsultationToResponse(reloaded, now)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		created = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Consultation created: id=%d, professional_id=%d", created.ID, created.ProfessionalID)
	return converter.ConsultationToResponse(created, now), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation, u.now()), nil
}

func (u *consultationUsecase) ListConsultations(ctx context.Context, query dto.ConsultationListQuery) (*dto.ConsultationListResponse, error) {
	filter := entity.ConsultationFilter{
		ProfessionalID: query.ProfessionalID,
		Date:           query.Date,
		Search:         query.Search,
		Ordering:       query.Ordering,
	}
	return u.list(ctx, filter, query.Page)
}

// ListByProfessional never fails for an unknown professional; the page is simply empty.
func (u *consultationUsecase) ListByProfessional(ctx context.Context, professionalID uint, page int) (*dto.ConsultationListResponse, error) {
	return u.list(ctx, entity.ConsultationFilter{ProfessionalID: &professionalID}, page)
}

func (u *consultationUsecase) list(ctx context.Context, filter entity.ConsultationFilter, pageNumber int) (*dto.ConsultationListResponse, error) {
	page := newPage(pageNumber, u.pageSize)

	consultations, total, err := u.consultationRepo.FindAll(u.transactor.DB(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all consultations: %+v", err)
		return nil, err
	}
	if err := checkPage(page, total); err != nil {
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToListItems(consultations, u.now()),
		PageInfo:      dto.PageInfo{Page: page.Number, PageSize: page.Size, Total: total},
	}, nil
}

// UpdateConsultation re-validates only the supplied fields. Past dates are
// accepted here; the scheduling rule applies to creation only.
func (u *consultationUsecase) UpdateConsultation(ctx context.Context, id uint, req *dto.ConsultationRequest, partial bool) (*dto.ConsultationResponse, error) {
	now := u.now()
	req.Notes = sanitizer.Pointer(req.Notes)

	var updated *entity.Consultation
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		consultation, err := u.consultationRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find consultation: %+v", err)
			return err
		}
		if consultation == nil {
			return ErrConsultationNotFound
		}

		errs := validation.Errors{}
		if !partial {
			errs = validation.Collect(
				validation.Required("scheduled_at", req.ScheduledAt != nil),
				validation.Required("professional_id", req.ProfessionalID != nil),
			)
		}
		if req.ProfessionalID != nil && *req.ProfessionalID != consultation.ProfessionalID {
			if err := u.checkProfessional(tx, *req.ProfessionalID, errs); err != nil {
				return err
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}

		// Capture old value for audit
		oldValue := converter.ConsultationToResponse(consultation, now)

		if req.ScheduledAt != nil {
			consultation.ScheduledAt = *req.ScheduledAt
		}
		if req.ProfessionalID != nil {
			consultation.ProfessionalID = *req.ProfessionalID
		}
		if req.Notes != nil {
			consultation.Notes = *req.Notes
		}

		if err := u.consultationRepo.Update(tx, consultation); err != nil {
			if isForeignKeyError(err, "professional") {
				return professionalMissing(consultation.ProfessionalID)
			}
			u.log.Warnf("Failed to update consultation: %+v", err)
			return err
		}

		reloaded, err := u.consultationRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find consultation: %+v", err)
			return err
		}
		if reloaded == nil {
			return ErrConsultationNotFound
		}

		// Audit log - update consultation
		if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionConsultationUpdate, consultationEntity, formatID(id), oldValue, converter.ConsultationToResponse(reloaded, now)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Consultation updated: id=%d", id)
	return converter.ConsultationToResponse(updated, now), nil
}

func (u *consultationUsecase) DeleteConsultation(ctx context.Context, id uint) error {
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		consultation, err := u.consultationRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find consultation: %+v", err)
			return err
		}
		if consultation == nil {
			return ErrConsultationNotFound
		}

		affectedRows, err := u.consultationRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed delete consultation: %+v", err)
			return err
		}
		if affectedRows == 0 {
			return ErrConsultationNotFound
		}

		// Audit log - delete consultation
		if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionConsultationDelete, consultationEntity, formatID(id), converter.ConsultationToResponse(consultation, u.now())); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.log.Infof("Consultation deleted: id=%d", id)
	return nil
}

// checkProfessional records a professional_id failure in errs when the
// professional does not exist. Only lookup failures are returned.
func (u *consultationUsecase) checkProfessional(tx *gorm.DB, professionalID uint, errs validation.Errors) error {
	exists, err := u.professionalRepo.Exists(tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to check professional: %+v", err)
		return err
	}
	if !exists {
		errs.Add("professional_id", professionalMissingMessage(professionalID))
	}
	return nil
}

func professionalMissing(professionalID uint) error {
	return validation.Errors{"professional_id": {professionalMissingMessage(professionalID)}}
}

func professionalMissingMessage(professionalID uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", professionalID)
}
