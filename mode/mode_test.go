package mode

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/data"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/inference"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/webhook"
)

type testConfig struct {
	config.IService
	address string
	folder  string
	samples int
}

func (c testConfig) GetServerAddress() string { return c.address }
func (c testConfig) GetDataFolder() string { return c.folder }
func (c testConfig) GetSampleCount() int { return c.samples }
func (c testConfig) GetModeMaxShutdownTime() int { return 2 }
func (c testConfig) GetGinMode() string { return "test" }

func newServices(cfg config.IService) pipeline.ServicesFactory {
	return pipeline.ServicesFactory{
		CfgSvc:       cfg,
		DataSvc:      data.NewFilesDB(cfg),
		InferenceSvc: inference.NewFake(),
		WebhookSvc:   webhook.NewFake(cfg),
	}
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestSampleWritesJSONLines(t *testing.T) {
	cfg := testConfig{IService: config.NewHardCoded(), samples: 25}
	var buf bytes.Buffer

	require.NoError(t, writeSamples(context.Background(), newServices(cfg), &buf))

	lines := 0
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var p map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &p))
		assert.Len(t, p, 5)
		assert.JSONEq(t, `"image"`, string(p["media_type"]))
		assert.JSONEq(t, `null`, string(p["media_url"]))
		lines++
	}
	assert.Equal(t, 25, lines)
}

func TestSampleStopsOnCancel(t *testing.T) {
	cfg := testConfig{IService: config.NewHardCoded(), samples: 5}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := writeSamples(ctx, newServices(cfg), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServerServesAndShutsDown(t *testing.T) {
	cfg := testConfig{
		IService: config.NewHardCoded(),
		address:  freeAddress(t),
		folder:   t.TempDir(),
	}
	svcs := newServices(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Server(ctx, svcs)
	}()

	url := fmt.Sprintf("http://%s/predict", cfg.address)
	var resp *http.Response
	require.Eventually(t, func() bool {
		r, err := http.Post(url, "application/json", strings.NewReader(`{"url":"http://x/a.jpg","type":"video"}`))
		if err != nil {
			return false
		}
		resp = r
		return true
	}, 3*time.Second, 20*time.Millisecond)

	var p model.Prediction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"http://x/a.jpg"`, string(p.MediaURL))
	assert.JSONEq(t, `"video"`, string(p.MediaType))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	// A final stats snapshot is stored on shutdown
	stats, err := svcs.DataSvc.RetrievePredictorStats()
	require.NoError(t, err)
	require.NotEmpty(t, stats)
	assert.Equal(t, "simpleCollector", stats[len(stats)-1].Name)
}

func TestServerReportsListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := testConfig{
		IService: config.NewHardCoded(),
		address:  l.Addr().String(),
		folder:   t.TempDir(),
	}

	err = Server(context.Background(), newServices(cfg))
	assert.Error(t, err)
}
