package jobs

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"partner-portal.backend/internal/usecases"
)

// MetricsCollectorJob periodically refreshes program-level prometheus gauges
type MetricsCollectorJob struct {
	metricsUc *usecases.MetricsUsecase
	interval  time.Duration
	stop      chan struct{}

	pointsLiability prometheus.Gauge
	referralCount   prometheus.Gauge
	pendingKYC      prometheus.Gauge
}

func NewMetricsCollectorJob(metricsUc *usecases.MetricsUsecase, registerer prometheus.Registerer) *MetricsCollectorJob {
	j := &MetricsCollectorJob{
		metricsUc: metricsUc,
		interval:  60 * time.Second,
		stop:      make(chan struct{}),
		pointsLiability: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "referral_points_liability_total",
			Help: "Sum of unredeemed points across all associates",
		}),
		referralCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "referral_submissions_total",
			Help: "Total referrals ever submitted regardless of status",
		}),
		pendingKYC: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kyc_pending_associates",
			Help: "Associates currently awaiting KYC review",
		}),
	}

	registerer.MustRegister(j.pointsLiability, j.referralCount, j.pendingKYC)
	return j
}

func (j *MetricsCollectorJob) Start(ctx context.Context) {
	log.Println("🕐 Starting metrics collector job...")

	// Prime the gauges immediately instead of waiting a full interval
	j.refresh(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Metrics collector job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Metrics collector job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *MetricsCollectorJob) Stop() {
	close(j.stop)
}

func (j *MetricsCollectorJob) refresh(ctx context.Context) {
	metrics, err := j.metricsUc.Compute(ctx)
	if err != nil {
		log.Printf("❌ Error computing ledger metrics: %v", err)
		return
	}

	j.pointsLiability.Set(float64(metrics.TotalPointsLiability))
	j.referralCount.Set(float64(metrics.GrossReferralCount))
	j.pendingKYC.Set(float64(len(metrics.PendingKYC)))
}
