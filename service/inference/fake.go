package inference

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
)

// fakeService does no inference at all. Every call draws count, severity and
// confidence uniformly from their fixed ranges and echoes the media fields.
type fakeService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewFake() IService {
	seed := uint64(time.Now().UnixNano())
	return NewFakeWithSource(rand.NewPCG(seed, seed>>1|1))
}

func NewFakeWithSource(src rand.Source) IService {
	return &fakeService{
		rnd: rand.New(src),
	}
}

func (svc *fakeService) Invoke(ctx context.Context, req model.PredictRequest) (model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return model.Prediction{}, err
	}

	// rand.Rand is not safe for concurrent use
	svc.mu.Lock()
	count := MinCount + svc.rnd.IntN(MaxCount-MinCount+1)
	severity := model.Severities[svc.rnd.IntN(len(model.Severities))]
	confidence := MinConfidence + svc.rnd.IntN(MaxConfidence-MinConfidence+1)
	svc.mu.Unlock()

	return model.Prediction{
		Count:      count,
		Severity:   severity,
		Confidence: confidence,
		MediaURL:   req.MediaURL(),
		MediaType:  req.MediaType(),
	}, nil
}
