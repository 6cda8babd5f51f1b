package usecase

import "context"

// HomeStats aggregates the landing page counters.
type HomeStats struct {
	Facilities int64
	Devices    int64
	Recyclers  int64
}

// HomeUsecase defines the landing page aggregation.
type HomeUsecase interface {
	// Stats counts facilities, catalog devices, and recycler profiles.
	Stats(ctx context.Context) (*HomeStats, error)
}
