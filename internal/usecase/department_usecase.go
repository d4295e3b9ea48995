package usecase

import (
	"context"

	"doc-booker/internal/converter"
	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/delivery/http/middleware"
	"doc-booker/internal/domain/entity"
	"doc-booker/internal/domain/repository"
	"doc-booker/internal/service"
	"doc-booker/pkg/sanitize"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DepartmentUsecase interface {
	GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	SaveDepartments(ctx context.Context, req *dto.SaveDepartmentsRequest) (*dto.DepartmentListResponse, error)
}

type departmentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	auditService service.AuditService
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	auditService service.AuditService,
) DepartmentUsecase {
	return &departmentUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		auditService: auditService,
	}
}

func (u *departmentUsecase) GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.settingsRepo.GetDepartments(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments: %+v", err)
		return nil, err
	}
	return converter.DepartmentsToListResponse(departments), nil
}

func (u *departmentUsecase) SaveDepartments(ctx context.Context, req *dto.SaveDepartmentsRequest) (*dto.DepartmentListResponse, error) {
	departments := buildDepartments(req.Names, req.Descriptions)

	if err := u.settingsRepo.SaveDepartments(ctx, departments); err != nil {
		u.log.Warnf("Failed to save departments: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionDepartmentsSave, "departments", "departments", nil, departments); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.DepartmentsToListResponse(departments), nil
}

// buildDepartments turns parallel name/description sequences into the
// stored mapping. Names are sanitized and used verbatim as keys
// (case-sensitive), empty names are skipped, and a later entry with
// the same key overwrites an earlier one in the same submission.
func buildDepartments(names []string, descriptions []string) entity.DepartmentMap {
	departments := entity.DepartmentMap{}
	for i, name := range names {
		name = sanitize.TextField(name)
		if name == "" {
			continue
		}

		description := ""
		if i < len(descriptions) {
			description = sanitize.TextareaField(descriptions[i])
		}

		departments[name] = entity.Department{
			Name:        name,
			Description: description,
		}
	}
	return departments
}
