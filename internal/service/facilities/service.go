package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/facilities/models"
)

// Service сервис каталога объектов и кортов
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Create создает объект (только администратор)
func (s *Service) Create(ctx context.Context, role domain.Role, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Create: creating facility name=%q, sports=%v", req.Name, req.Sports)

	if role != domain.RoleAdmin {
		s.logger.Warn("Create: role=%s is not allowed to create facilities", role)
		return nil, ErrAccessDenied
	}

	facility, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created facility id=%d", created.ID)
	return models.FromDomainFacility(created), nil
}

// AddCourt добавляет корт в объект (только администратор)
func (s *Service) AddCourt(ctx context.Context, role domain.Role, facilityID int64, req *models.AddCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("AddCourt: facility=%d, number=%d", facilityID, req.Number)

	if role != domain.RoleAdmin {
		s.logger.Warn("AddCourt: role=%s is not allowed to add courts", role)
		return nil, ErrAccessDenied
	}

	if req.Number <= 0 {
		return nil, fmt.Errorf("%w: court number must be positive", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: court name is too long", ErrInvalidInput)
	}

	court, err := s.facilityRepo.AddCourt(ctx, &domain.Court{
		FacilityID: facilityID,
		Number:     req.Number,
		Name:       strings.TrimSpace(req.Name),
	})
	if err != nil {
		switch {
		case errors.Is(err, facilityRepo.ErrFacilityNotFound):
			s.logger.Warn("AddCourt: facility id=%d not found", facilityID)
			return nil, ErrFacilityNotFound
		case errors.Is(err, facilityRepo.ErrCourtNumberTaken):
			s.logger.Warn("AddCourt: court number=%d already exists in facility id=%d", req.Number, facilityID)
			return nil, ErrCourtNumberTaken
		}
		s.logger.Error("AddCourt: repository error for facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: AddCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddCourt: successfully added court id=%d to facility id=%d", court.ID, facilityID)
	return models.FromDomainCourt(court), nil
}

// GetByID получает объект с кортами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// List получает объекты, опционально только с указанным видом спорта
func (s *Service) List(ctx context.Context, sport *string) (*models.FacilityListResponse, error) {
	var filter *string
	if sport != nil && domain.NormalizeSport(*sport) != "" {
		normalized := domain.NormalizeSport(*sport)
		filter = &normalized
	}

	facilities, err := s.facilityRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d facilities", len(facilities))
	return models.FromDomainFacilityList(facilities), nil
}

// validateCreate проверяет запрос и собирает domain модель
func validateCreate(req *models.CreateFacilityRequest) (*domain.Facility, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.PricePerSlot < 0 {
		return nil, fmt.Errorf("%w: pricePerSlot must not be negative", ErrInvalidInput)
	}

	sports := make([]string, 0, len(req.Sports))
	seen := make(map[string]struct{}, len(req.Sports))
	for _, sport := range req.Sports {
		sport = domain.NormalizeSport(sport)
		if sport == "" {
			continue
		}
		if _, ok := seen[sport]; ok {
			continue
		}
		seen[sport] = struct{}{}
		sports = append(sports, sport)
	}
	if len(sports) == 0 {
		return nil, fmt.Errorf("%w: at least one sport is required", ErrInvalidInput)
	}

	return &domain.Facility{
		Name:         name,
		Location:     strings.TrimSpace(req.Location),
		Sports:       sports,
		PricePerSlot: req.PricePerSlot,
	}, nil
}
