package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mixedStreakWindow is the number of consecutive mixed logs that triggers a
// fine. The window is re-read from storage on every call, so any non-mixed
// log breaks the streak without extra bookkeeping.
const mixedStreakWindow = 3

// WasteLogService handles disposal logging and the mixed-waste fine policy
type WasteLogService struct {
	wasteLogRepo repositories.WasteLogRepository
	pickupRepo   repositories.PickupRepository
	userRepo     repositories.UserRepository
	cfg          *config.Config
}

// NewWasteLogService creates a new WasteLogService
func NewWasteLogService(wasteLogRepo repositories.WasteLogRepository, pickupRepo repositories.PickupRepository, userRepo repositories.UserRepository, cfg *config.Config) *WasteLogService {
	return &WasteLogService{
		wasteLogRepo: wasteLogRepo,
		pickupRepo:   pickupRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

// AddWasteLog appends a disposal event for the user. The third consecutive
// mixed log is fined: the new entry is marked and the fixed penalty is added
// to the user's outstanding balance. Returns the stored log and whether a
// fine was applied.
func (s *WasteLogService) AddWasteLog(ctx context.Context, userID primitive.ObjectID, wasteType models.WasteType) (*models.WasteLog, bool, error) {
	switch wasteType {
	case models.WasteTypeWet, models.WasteTypeDry, models.WasteTypeMixed:
	default:
		return nil, false, ErrInvalidWasteType
	}

	fined := false
	if wasteType == models.WasteTypeMixed {
		recent, err := s.wasteLogRepo.FindRecentByUserID(ctx, userID, mixedStreakWindow-1)
		if err != nil {
			return nil, false, err
		}
		if len(recent) == mixedStreakWindow-1 {
			fined = true
			for _, prev := range recent {
				if prev.Type != models.WasteTypeMixed {
					fined = false
					break
				}
			}
		}
	}

	log := &models.WasteLog{
		UserID:    userID,
		Type:      wasteType,
		Fined:     fined,
		Timestamp: time.Now(),
	}
	if err := s.wasteLogRepo.Create(ctx, log); err != nil {
		return nil, false, err
	}

	if fined {
		if err := s.userRepo.IncrementBalance(ctx, userID, s.cfg.Billing.MixedWasteFine); err != nil {
			return nil, false, err
		}
		slog.Info("mixed-waste fine applied", "userId", userID.Hex(), "amount", s.cfg.Billing.MixedWasteFine)
	}

	pickup := &models.Pickup{
		UserID: userID,
		Type:   pickupTypeFor(wasteType),
		Date:   log.Timestamp,
	}
	if err := s.pickupRepo.Create(ctx, pickup); err != nil {
		return nil, false, err
	}

	return log, fined, nil
}

// GetUserWasteLogs retrieves a user's waste logs, newest first
func (s *WasteLogService) GetUserWasteLogs(ctx context.Context, userID primitive.ObjectID) ([]*models.WasteLog, error) {
	return s.wasteLogRepo.FindByUserID(ctx, userID)
}

// GetUserPickupHistory retrieves a user's pickup history, newest first
func (s *WasteLogService) GetUserPickupHistory(ctx context.Context, userID primitive.ObjectID) ([]*models.Pickup, error) {
	return s.pickupRepo.FindByUserID(ctx, userID)
}

// pickupTypeFor maps a waste type to the collection stream it goes out on
func pickupTypeFor(wasteType models.WasteType) models.PickupType {
	switch wasteType {
	case models.WasteTypeWet:
		return models.PickupTypeCompost
	case models.WasteTypeDry:
		return models.PickupTypeRecycling
	default:
		return models.PickupTypeGeneral
	}
}
