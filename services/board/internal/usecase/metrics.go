package usecase

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// submissionsTotal counts submissions by outcome
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "board_submissions_total",
		Help: "Total post submissions by outcome",
	}, []string{"outcome"})

	// resolutionsTotal counts resolution requests by action and result
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "board_resolutions_total",
		Help: "Total resolution requests by action and result",
	}, []string{"action", "result"})

	// postsByStatus mirrors the live tier counts after each write
	postsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "board_posts",
		Help: "Number of posts per lifecycle status",
	}, []string{"status"})
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrCoreFull):
		return "core_full"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	case errors.Is(err, ErrReplacementFailed):
		return "replacement_failed"
	default:
		return "storage_error"
	}
}
