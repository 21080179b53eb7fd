package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePredictRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantURL  string
		wantType string
	}{
		{"empty body", ``, `null`, `"image"`},
		{"garbage", `not json`, `null`, `"image"`},
		{"json null", `null`, `null`, `"image"`},
		{"json array", `[1,2,3]`, `null`, `"image"`},
		{"json scalar", `42`, `null`, `"image"`},
		{"empty object", `{}`, `null`, `"image"`},
		{"both fields", `{"url": "http://x/a.jpg", "type": "video"}`, `"http://x/a.jpg"`, `"video"`},
		{"url only", `{"url":"http://x/b.png"}`, `"http://x/b.png"`, `"image"`},
		{"explicit null type", `{"type":null}`, `null`, `null`},
		{"non-string url", `{"url":7}`, `7`, `"image"`},
		{"unknown fields ignored", `{"foo":"bar","type":"image"}`, `null`, `"image"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParsePredictRequest([]byte(tt.body))
			assert.JSONEq(t, tt.wantURL, string(req.MediaURL()))
			assert.JSONEq(t, tt.wantType, string(req.MediaType()))
		})
	}
}

func TestPredictionJSONShape(t *testing.T) {
	req := ParsePredictRequest([]byte(`{"url":"http://x/a.jpg"}`))
	p := Prediction{
		Count:      3,
		Severity:   SeverityMedium,
		Confidence: 77,
		MediaURL:   req.MediaURL(),
		MediaType:  req.MediaType(),
	}

	b, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"count":3,"severity":"medium","confidence":77,"media_url":"http://x/a.jpg","media_type":"image"}`, string(b))
	assert.Equal(t, "http://x/a.jpg", p.Source())
}

func TestPredictionSourceWithoutURL(t *testing.T) {
	p := Prediction{MediaURL: PredictRequest{}.MediaURL()}
	assert.Equal(t, "null", p.Source())
}

func TestGenError(t *testing.T) {
	inner := errors.New("boom")
	e := GenError("collector", inner, map[string]interface{}{"k": 1}, "posting alert for %s", "cam")

	assert.Equal(t, "collector", e.Processor)
	assert.Equal(t, "posting alert for cam", e.Message)
	assert.NotEmpty(t, e.StackTrace)
	assert.ErrorIs(t, e, inner)
	assert.Equal(t, "collector: posting alert for cam: boom", e.Error())
}
