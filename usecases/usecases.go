package usecases

import (
	"time"

	"smoke-server/entities"
	"smoke-server/repositories"
)

// Notifier dispatches a best-effort outbound alert. Implementations must
// never block ingestion on failure.
type Notifier interface {
	SendAlert(value float64, status string)
}

// Feed receives every accepted reading for live fan-out to dashboards.
type Feed interface {
	BroadcastReading(reading *entities.SmokeLog)
}

type SmokeLogUseCase struct {
	Repo     repositories.SmokeLogRepository
	Notifier Notifier
	Feed     Feed
}

func NewSmokeLogUseCase(repo repositories.SmokeLogRepository, notifier Notifier, feed Feed) *SmokeLogUseCase {
	return &SmokeLogUseCase{
		Repo:     repo,
		Notifier: notifier,
		Feed:     feed,
	}
}

// IngestRequest is the raw ingestion payload. Pointer fields distinguish an
// absent/null field from a legitimate zero reading. Older firmware sends the
// smoke reading as "value"; newer firmware sends "smoke".
type IngestRequest struct {
	Smoke   *float64 `json:"smoke"`
	Value   *float64 `json:"value"`
	Alcohol *float64 `json:"alcohol"`
	Lpg     *float64 `json:"lpg"`
	Status  *string  `json:"status"`
}

// SmokeValue resolves the field-name alias: "smoke" wins when both are set.
func (r *IngestRequest) SmokeValue() *float64 {
	if r.Smoke != nil {
		return r.Smoke
	}
	return r.Value
}

// Ingest validates a reading, persists it, and fires the alert and live-feed
// side effects. The reading is only persisted once; side effects run after a
// successful insert and never fail the request.
func (uc *SmokeLogUseCase) Ingest(req *IngestRequest) (*entities.SmokeLog, error) {
	smoke := req.SmokeValue()
	if smoke == nil {
		return nil, ErrMissingSmoke
	}
	if req.Status == nil {
		return nil, ErrMissingStatus
	}

	reading := &entities.SmokeLog{
		Smoke:   *smoke,
		Alcohol: req.Alcohol,
		Lpg:     req.Lpg,
		Status:  *req.Status,
	}

	if err := uc.Repo.Create(reading); err != nil {
		return nil, err
	}

	if reading.IsAlerting() && uc.Notifier != nil {
		uc.Notifier.SendAlert(reading.Smoke, reading.Status)
	}

	if uc.Feed != nil {
		uc.Feed.BroadcastReading(reading)
	}

	return reading, nil
}

// Recent returns up to limit readings, newest first.
func (uc *SmokeLogUseCase) Recent(limit int) ([]entities.SmokeLog, error) {
	return uc.Repo.Recent(limit)
}

// Latest returns the newest reading, or nil when no readings exist yet.
func (uc *SmokeLogUseCase) Latest() (*entities.SmokeLog, error) {
	return uc.Repo.Latest()
}

// DBTime reports the store's current clock.
func (uc *SmokeLogUseCase) DBTime() (time.Time, error) {
	return uc.Repo.Now()
}
