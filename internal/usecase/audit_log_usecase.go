package usecase

import (
	"context"
	"errors"

	"health-scheduling-api/internal/converter"
	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, page int) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	transactor   repository.Transactor
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
	pageSize     int
}

func NewAuditLogUsecase(
	transactor repository.Transactor,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
	pageSize int,
) AuditLogUsecase {
	return &auditLogUsecase{
		transactor:   transactor,
		log:          log,
		auditLogRepo: auditLogRepo,
		pageSize:     pageSize,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, pageNumber int) (*dto.AuditLogListResponse, error) {
	page := newPage(pageNumber, u.pageSize)

	logs, total, err := u.auditLogRepo.FindAll(u.transactor.DB(ctx), page)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}
	if err := checkPage(page, total); err != nil {
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:     converter.AuditLogsToResponses(logs),
		PageInfo: dto.PageInfo{Page: page.Number, PageSize: page.Size, Total: total},
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
