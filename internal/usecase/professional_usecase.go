package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

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

var (
	ErrProfessionalNotFound         = errors.New("professional not found")
	ErrProfessionalHasConsultations = errors.New("professional has consultations")
	ErrInvalidPage                  = errors.New("invalid page")
)

const professionalEntity = "professional"

type ProfessionalUsecase interface {
	CreateProfessional(ctx context.Context, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, query dto.ProfessionalListQuery) (*dto.ProfessionalListResponse, error)
	UpdateProfessional(ctx context.Context, id uint, req *dto.ProfessionalRequest, partial bool) (*dto.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, id uint) error
}

type professionalUsecase struct {
	transactor       repository.Transactor
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
	pageSize         int
}

func NewProfessionalUsecase(
	transactor repository.Transactor,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
	pageSize int,
) ProfessionalUsecase {
	return &professionalUsecase{
		transactor:       transactor,
		log:              log,
		professionalRepo: professionalRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
		pageSize:         pageSize,
	}
}

func (u *professionalUsecase) CreateProfessional(ctx context.Context, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error) {
	if err := validateProfessional(req, false); err != nil {
		return nil, err
	}

	professional := &entity.Professional{
		SocialName: *req.SocialName,
		Profession: *req.Profession,
		Address:    *req.Address,
		Contact:    *req.Contact,
	}

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.professionalRepo.Create(tx, professional); err != nil {
			u.log.Warnf("Failed to create professional: %+v", err)
			return err
		}

		// Audit log - create professional
		if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionProfessionalCreate, professionalEntity, formatID(professional.ID), converter.ProfessionalToResponse(professional)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Professional created: id=%d, name=%s", professional.ID, professional.SocialName)
	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) ListProfessionals(ctx context.Context, query dto.ProfessionalListQuery) (*dto.ProfessionalListResponse, error) {
	page := newPage(query.Page, u.pageSize)
	filter := entity.ProfessionalFilter{
		Profession: query.Profession,
		Search:     query.Search,
		Ordering:   query.Ordering,
	}

	summaries, total, err := u.professionalRepo.FindAll(u.transactor.DB(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all professionals: %+v", err)
		return nil, err
	}
	if err := checkPage(page, total); err != nil {
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalSummariesToListItems(summaries),
		PageInfo:      dto.PageInfo{Page: page.Number, PageSize: page.Size, Total: total},
	}, nil
}

func (u *professionalUsecase) UpdateProfessional(ctx context.Context, id uint, req *dto.ProfessionalRequest, partial bool) (*dto.ProfessionalResponse, error) {
	var updated *entity.Professional

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		professional, err := u.professionalRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find professional: %+v", err)
			return err
		}
		if professional == nil {
			return ErrProfessionalNotFound
		}

		if err := validateProfessional(req, partial); err != nil {
			return err
		}

		// Capture old value for audit
		oldValue := converter.ProfessionalToResponse(professional)

		if req.SocialName != nil {
			professional.SocialName = *req.SocialName
		}
		if req.Profession != nil {
			professional.Profession = *req.Profession
		}
		if req.Address != nil {
			professional.Address = *req.Address
		}
		if req.Contact != nil {
			professional.Contact = *req.Contact
		}

		if err := u.professionalRepo.Update(tx, professional); err != nil {
			u.log.Warnf("Failed to update professional: %+v", err)
			return err
		}

		// Audit log - update professional
		if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionProfessionalUpdate, professionalEntity, formatID(id), oldValue, converter.ProfessionalToResponse(professional)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		updated = professional
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Professional updated: id=%d", id)
	return converter.ProfessionalToResponse(updated), nil
}

func (u *professionalUsecase) DeleteProfessional(ctx context.Context, id uint) error {
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		professional, err := u.professionalRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find professional: %+v", err)
			return err
		}
		if professional == nil {
			return ErrProfessionalNotFound
		}

		// Friendly fast path; the foreign key below is what actually guards the delete.
		count, err := u.consultationRepo.CountByProfessionalID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to count consultations: %+v", err)
			return err
		}
		if count > 0 {
			return ErrProfessionalHasConsultations
		}

		affectedRows, err := u.professionalRepo.Delete(tx, id)
		if err != nil {
			if isForeignKeyError(err, "professional") {
				return ErrProfessionalHasConsultations
			}
			u.log.Warnf("Failed delete professional: %+v", err)
			return err
		}
		if affectedRows == 0 {
			return ErrProfessionalNotFound
		}

		// Audit log - delete professional
		if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionProfessionalDelete, professionalEntity, formatID(id), converter.ProfessionalToResponse(professional)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.log.Infof("Professional deleted: id=%d", id)
	return nil
}

// validateProfessional sanitizes the supplied fields in place, then checks
// them. With partial=false every field is required.
func validateProfessional(req *dto.ProfessionalRequest, partial bool) error {
	req.SocialName = sanitizer.Pointer(req.SocialName)
	req.Profession = sanitizer.Pointer(req.Profession)
	req.Address = sanitizer.Pointer(req.Address)
	req.Contact = sanitizer.Pointer(req.Contact)

	var rules []validation.Rule
	rules = append(rules, textRules("social_name", "Social name", req.SocialName, 2, 255, partial)...)
	rules = append(rules, textRules("profession", "Profession", req.Profession, 2, 255, partial)...)
	rules = append(rules, textRules("address", "Address", req.Address, 5, 0, partial)...)
	rules = append(rules, textRules("contact", "Contact", req.Contact, 5, 255, partial)...)
	return validation.Validate(rules...)
}

// textRules checks a sanitized text field. max <= 0 means unbounded.
func textRules(field, label string, value *string, min, max int, partial bool) []validation.Rule {
	if value == nil {
		if partial {
			return nil
		}
		return []validation.Rule{validation.Required(field, false)}
	}

	rules := []validation.Rule{
		validation.MinLength(field, *value, min, fmt.Sprintf("%s must have at least %d characters.", label, min)),
	}
	if max > 0 {
		rules = append(rules, validation.MaxLength(field, *value, max, fmt.Sprintf("%s must have at most %d characters.", label, max)))
	}
	return rules
}

func newPage(number, size int) entity.Page {
	if number < 1 {
		number = 1
	}
	return entity.Page{Number: number, Size: size}
}

// checkPage rejects a page past the last one. The first page always exists,
// even for an empty result.
func checkPage(page entity.Page, total int64) error {
	if page.Number > 1 && int64(page.Offset()) >= total {
		return ErrInvalidPage
	}
	return nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
