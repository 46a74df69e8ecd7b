package service

import (
	"context"
	"runtime"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/dto"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"

	"go.uber.org/zap"
)

// ServerStats returns the admin dashboard totals.
func (s *Service) ServerStats(ctx context.Context) (*moduledto.ServerStatsResponse, error) {
	counts, err := s.systemStore.Counts(ctx)
	if err != nil {
		logger.L.Error("count entities failed", zap.Error(err))
		return nil, platformservice.NewInternalError("Failed to collect statistics")
	}

	return &moduledto.ServerStatsResponse{
		UserCount:    counts.Users,
		ImageCount:   counts.Images,
		CommentCount: counts.Comments,
		RatingCount:  counts.Ratings,
		TagCount:     counts.Tags,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
