package usecase

import (
	"errors"
	"fmt"
	"math/rand"

	"clipstream/pkg/logger"
	"clipstream/services/revenue/internal/entity"
	"clipstream/services/revenue/internal/repo/persistent"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoApprovedVideo = errors.New("no approved videos found for this user")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCount    = errors.New("view count must be positive")

	// ErrViewAccounting signals counted views exceeding the video's recorded
	// views. That can only come from a data bug upstream (for example a view
	// purge without earning cleanup), so it is surfaced, never clamped away.
	ErrViewAccounting = errors.New("counted views exceed recorded views")
)

const viewsPerChunk = 1000

type RevenueUseCase interface {
	Reconcile(videoID string) (*entity.Earning, error)
	GetEarnings(userID string) (*entity.EarningsSummary, error)
	AddBonus(adminID, userID string, amount decimal.Decimal) (*entity.Earning, error)
	SimulateViews(adminID, userID string, viewCount int) (*entity.SimulationResult, error)
}

type revenueUseCase struct {
	revenueRepo persistent.RevenueRepository
	payoutRate  decimal.Decimal
	logger      *logger.Logger
}

func NewRevenueUseCase(revenueRepo persistent.RevenueRepository, payoutRatePerThousand decimal.Decimal, logger *logger.Logger) RevenueUseCase {
	return &revenueUseCase{
		revenueRepo: revenueRepo,
		payoutRate:  payoutRatePerThousand,
		logger:      logger,
	}
}

// earningsFor prices a view count at the per-thousand rate, paying only for
// whole thousands. Integer division does the flooring.
func (uc *revenueUseCase) earningsFor(views int) decimal.Decimal {
	thousands := views / viewsPerChunk
	return uc.payoutRate.Mul(decimal.NewFromInt(int64(thousands)))
}

func floorToThousand(views int) int {
	return (views / viewsPerChunk) * viewsPerChunk
}

// Reconcile converts a video's unmonetized views into at most one new Earning
// row. The watermark (sum of earning views) is recomputed from storage under
// a per-video row lock on every call, so repeated or concurrent calls never
// double-count. Returns nil when there is nothing to accrue.
func (uc *revenueUseCase) Reconcile(videoID string) (*entity.Earning, error) {
	earning, err := uc.revenueRepo.AccrueEarnings(videoID, func(video *entity.Video, countedViews int) (*entity.Earning, error) {
		if video.Status != entity.StatusApproved {
			// Unapproved videos never earn.
			return nil, nil
		}

		newViews := video.Views - countedViews
		if newViews < 0 {
			uc.logger.Error("View accounting violation on video %s: views=%d counted=%d", video.ID, video.Views, countedViews)
			return nil, ErrViewAccounting
		}
		if newViews < viewsPerChunk {
			return nil, nil
		}

		viewsToCount := floorToThousand(newViews)
		return &entity.Earning{
			UserID:  video.UserID,
			VideoID: &video.ID,
			Amount:  uc.earningsFor(viewsToCount),
			Views:   viewsToCount,
			Status:  entity.EarningConfirmed,
		}, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		if errors.Is(err, ErrViewAccounting) {
			return nil, err
		}
		uc.logger.Error("Failed to reconcile video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to reconcile earnings: %w", err)
	}

	return earning, nil
}

func (uc *revenueUseCase) GetEarnings(userID string) (*entity.EarningsSummary, error) {
	total, err := uc.revenueRepo.SumEarnings(userID)
	if err != nil {
		uc.logger.Error("Failed to sum earnings: %v", err)
		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}

	breakdown, err := uc.revenueRepo.GetBreakdown(userID)
	if err != nil {
		uc.logger.Error("Failed to get breakdown: %v", err)
		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}

	states, err := uc.revenueRepo.GetApprovedAccrualStates(userID)
	if err != nil {
		uc.logger.Error("Failed to get accrual states: %v", err)
		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}

	pendingViews := 0
	for _, state := range states {
		pendingViews += state.Views - state.CountedViews
	}

	return &entity.EarningsSummary{
		TotalEarnings: total,
		Pending: entity.PendingEarnings{
			PendingViews: pendingViews,
			// Same floor-to-thousand rule as accrual, applied to the summed
			// remainder across the catalog.
			EstimatedEarnings: uc.earningsFor(pendingViews),
		},
		Breakdown: breakdown,
	}, nil
}

// AddBonus grants a manual earning with no video and zero views. It bypasses
// reconciliation entirely and never moves any accrual watermark.
func (uc *revenueUseCase) AddBonus(adminID, userID string, amount decimal.Decimal) (*entity.Earning, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	exists, err := uc.revenueRepo.UserExists(userID)
	if err != nil {
		uc.logger.Error("Failed to look up user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to add bonus: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	earning := &entity.Earning{
		UserID: userID,
		Amount: amount,
		Views:  0,
		Status: entity.EarningConfirmed,
	}
	if err := uc.revenueRepo.CreateEarning(earning); err != nil {
		uc.logger.Error("Failed to create bonus earning: %v", err)
		return nil, fmt.Errorf("failed to add bonus: %w", err)
	}

	if err := uc.revenueRepo.CreateAuditLog(adminID, "EARNINGS_BONUS", "user", userID, amount.String()); err != nil {
		uc.logger.Error("Failed to write audit log: %v", err)
	}

	return earning, nil
}

// SimulateViews injects synthetic views against the user's newest approved
// video and credits the full count at the per-thousand rate in one shot. This
// admin tool deliberately skips the floor-to-thousand and watermark logic of
// Reconcile: a non-multiple-of-1000 count produces a fractional-thousands
// earning row that the production path would never create.
func (uc *revenueUseCase) SimulateViews(adminID, userID string, viewCount int) (*entity.SimulationResult, error) {
	if viewCount < 1 {
		return nil, ErrInvalidCount
	}

	video, err := uc.revenueRepo.GetLatestApprovedVideo(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoApprovedVideo
		}
		uc.logger.Error("Failed to find approved video for %s: %v", userID, err)
		return nil, fmt.Errorf("failed to simulate views: %w", err)
	}

	views := make([]entity.View, viewCount)
	for i := range views {
		views[i] = entity.View{
			VideoID:   video.ID,
			IPAddress: fmt.Sprintf("192.168.%d.%d", rand.Intn(255), rand.Intn(255)),
		}
	}

	if err := uc.revenueRepo.InsertSimulatedViews(video.ID, views); err != nil {
		uc.logger.Error("Failed to insert simulated views: %v", err)
		return nil, fmt.Errorf("failed to simulate views: %w", err)
	}

	if err := uc.revenueRepo.IncrementViews(video.ID, viewCount); err != nil {
		uc.logger.Error("Failed to increment view counter: %v", err)
		return nil, fmt.Errorf("failed to simulate views: %w", err)
	}

	amount := uc.payoutRate.
		Mul(decimal.NewFromInt(int64(viewCount))).
		Div(decimal.NewFromInt(viewsPerChunk))

	earning := &entity.Earning{
		UserID:  userID,
		VideoID: &video.ID,
		Amount:  amount,
		Views:   viewCount,
		Status:  entity.EarningConfirmed,
	}
	if err := uc.revenueRepo.CreateEarning(earning); err != nil {
		uc.logger.Error("Failed to create simulated earning: %v", err)
		return nil, fmt.Errorf("failed to simulate views: %w", err)
	}

	if err := uc.revenueRepo.CreateAuditLog(adminID, "VIEWS_SIMULATED", "video", video.ID, fmt.Sprintf("%d views", viewCount)); err != nil {
		uc.logger.Error("Failed to write audit log: %v", err)
	}

	return &entity.SimulationResult{
		VideoID:    video.ID,
		VideoTitle: video.Title,
		NewViews:   viewCount,
		Earnings:   amount,
	}, nil
}
