package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"doc-booker/internal/domain/entity"
	"doc-booker/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

type DirectoryUsecase interface {
	// BuildDirectory snapshots departments and active doctors, then
	// filters, groups and sorts them. Reads happen before any
	// filtering, so a single call never sees a partial update.
	BuildDirectory(ctx context.Context, filter entity.DirectoryFilter) (*entity.DirectoryResult, error)
	// DepartmentOptions lists departments sorted case-insensitively by
	// name for the filter dropdown.
	DepartmentOptions(ctx context.Context) ([]entity.Department, []string, error)
}

type directoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	doctorRepo   repository.DoctorProfileRepository
	baseURL      string
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	doctorRepo repository.DoctorProfileRepository,
	baseURL string,
) DirectoryUsecase {
	return &directoryUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		doctorRepo:   doctorRepo,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (u *directoryUsecase) BuildDirectory(ctx context.Context, filter entity.DirectoryFilter) (*entity.DirectoryResult, error) {
	departments, err := u.settingsRepo.GetDepartments(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments: %+v", err)
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}

	result := buildDirectory(filter, departments, doctors, u.baseURL)
	return &result, nil
}

func (u *directoryUsecase) DepartmentOptions(ctx context.Context) ([]entity.Department, []string, error) {
	departments, err := u.settingsRepo.GetDepartments(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments: %+v", err)
		return nil, nil, err
	}

	keys := make([]string, 0, len(departments))
	for key := range departments {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return strings.ToLower(departments[keys[i]].Name) < strings.ToLower(departments[keys[j]].Name)
	})

	options := make([]entity.Department, 0, len(keys))
	for _, key := range keys {
		options = append(options, departments[key])
	}
	return options, keys, nil
}

// buildDirectory applies the department, name and letter filters to
// the doctor listing and shapes the survivors into per-department
// groups. The date and availability filter fields are accepted but
// inert. Doctors within a group sort by name, groups by department
// name, both case-insensitive ascending.
func buildDirectory(filter entity.DirectoryFilter, departments entity.DepartmentMap, doctors []entity.DoctorProfile, baseURL string) entity.DirectoryResult {
	groups := map[string]*entity.DirectoryGroup{}
	var order []string
	total := 0

	for _, doctor := range doctors {
		// The raw key drives filtering and grouping even when it no
		// longer resolves; only the display fields fall back.
		departmentKey := doctor.DepartmentKey
		departmentName := entity.UnassignedDepartmentName
		departmentDesc := ""
		if department, ok := departments[departmentKey]; ok {
			departmentName = department.Name
			departmentDesc = department.Description
		}

		if filter.Department != "" && departmentKey != filter.Department {
			continue
		}

		if filter.Name != "" && !containsFold(doctor.User.FullName, filter.Name) {
			continue
		}

		letter := NameLetter(departmentName)
		if filter.Letter != "" && !strings.EqualFold(filter.Letter, entity.DirectoryLetterAll) {
			if !strings.EqualFold(letter, filter.Letter) {
				continue
			}
		}

		groupKey := departmentKey
		if groupKey == "" {
			groupKey = entity.UnassignedGroupKey
		}

		group, ok := groups[groupKey]
		if !ok {
			group = &entity.DirectoryGroup{
				Key:         groupKey,
				Name:        departmentName,
				Description: departmentDesc,
				Letter:      strings.ToLower(letter),
			}
			groups[groupKey] = group
			order = append(order, groupKey)
		}

		group.Doctors = append(group.Doctors, entity.DoctorCard{
			ID:         doctor.UserID,
			Name:       doctor.User.FullName,
			Email:      doctor.User.Email,
			ProfileURL: profileURL(baseURL, doctor),
			AvatarURL:  doctor.AvatarURL,
			Letter:     letter,
		})
		total++
	}

	result := make([]entity.DirectoryGroup, 0, len(order))
	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group.Doctors, func(i, j int) bool {
			return strings.ToLower(group.Doctors[i].Name) < strings.ToLower(group.Doctors[j].Name)
		})
		result = append(result, *group)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})

	return entity.DirectoryResult{Groups: result, Total: total}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func profileURL(baseURL string, doctor entity.DoctorProfile) string {
	if baseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/doctors/%s", baseURL, doctor.UserID)
}

// accentFolder strips combining marks so accented names bucket under
// their base letter.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NameLetter derives the letter bucket for a department name: the
// uppercase first character after accent folding, "#" when that
// character is not an ASCII letter, "" for a blank name.
func NameLetter(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	folded, _, err := transform.String(accentFolder, name)
	if err != nil {
		folded = name
	}

	first, _ := utf8.DecodeRuneInString(folded)
	upper := unicode.ToUpper(first)
	if upper >= 'A' && upper <= 'Z' {
		return string(upper)
	}
	return "#"
}
