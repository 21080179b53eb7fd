package inference

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
)

func TestInvokeRanges(t *testing.T) {
	svc := NewFake()
	counts := map[int]bool{}
	severities := map[model.Severity]bool{}

	for i := 0; i < 5000; i++ {
		p, err := svc.Invoke(context.Background(), model.PredictRequest{})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p.Count, MinCount)
		assert.LessOrEqual(t, p.Count, MaxCount)
		assert.GreaterOrEqual(t, p.Confidence, MinConfidence)
		assert.LessOrEqual(t, p.Confidence, MaxConfidence)
		assert.Contains(t, model.Severities, p.Severity)

		counts[p.Count] = true
		severities[p.Severity] = true
	}

	// Every value of the small ranges shows up over this many draws
	assert.Len(t, counts, MaxCount-MinCount+1)
	assert.Len(t, severities, len(model.Severities))
}

func TestInvokeEchoesMediaFields(t *testing.T) {
	svc := NewFake()

	req := model.ParsePredictRequest([]byte(`{"url": "http://x/a.jpg", "type": "video"}`))
	p, err := svc.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `"http://x/a.jpg"`, string(p.MediaURL))
	assert.JSONEq(t, `"video"`, string(p.MediaType))

	p, err = svc.Invoke(context.Background(), model.PredictRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(p.MediaURL))
	assert.JSONEq(t, `"image"`, string(p.MediaType))
}

func TestInvokeDeterministicWithSource(t *testing.T) {
	a := NewFakeWithSource(rand.NewPCG(1, 2))
	b := NewFakeWithSource(rand.NewPCG(1, 2))

	for i := 0; i < 50; i++ {
		pa, err := a.Invoke(context.Background(), model.PredictRequest{})
		require.NoError(t, err)
		pb, err := b.Invoke(context.Background(), model.PredictRequest{})
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}
}

func TestInvokeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFake().Invoke(ctx, model.PredictRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvokeConcurrent(t *testing.T) {
	svc := NewFake()
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				p, err := svc.Invoke(context.Background(), model.PredictRequest{})
				assert.NoError(t, err)
				assert.LessOrEqual(t, p.Count, MaxCount)
			}
		}()
	}

	wg.Wait()
}
