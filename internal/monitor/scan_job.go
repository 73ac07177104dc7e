package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// TenantSource lists the tenants a scheduled scan must cover
type TenantSource interface {
	Tenants(ctx context.Context) ([]string, error)
}

// ScanJob runs the emitter for every known tenant. It satisfies the
// scheduler's Job interface.
type ScanJob struct {
	emitter *Emitter
	tenants TenantSource
	timeout time.Duration
	log     zerolog.Logger
}

// NewScanJob creates the periodic obligation scan job
func NewScanJob(emitter *Emitter, tenants TenantSource, log zerolog.Logger) *ScanJob {
	return &ScanJob{
		emitter: emitter,
		tenants: tenants,
		timeout: 2 * time.Minute,
		log:     log.With().Str("component", "scan_job").Logger(),
	}
}

// Name returns the job identifier used in scheduler logs
func (j *ScanJob) Name() string {
	return "obligation_scan"
}

// Run executes one scan pass across all tenants. A tenant's scan failures
// are already contained by the emitter; only the tenant listing itself can
// fail the job.
func (j *ScanJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	tenants, err := j.tenants.Tenants(ctx)
	if err != nil {
		return err
	}

	for _, tenantID := range tenants {
		j.emitter.Scan(ctx, tenantID)
	}

	j.log.Debug().Int("tenants", len(tenants)).Msg("Scan pass complete")
	return nil
}
