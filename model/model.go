package model

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
)

type CustomError struct {
	Processor  string                 `json:"processor"`
	Inner      error                  `json:"innerError"`
	Message    string                 `json:"message"`
	StackTrace string                 `json:"stackTrace"`
	Misc       map[string]interface{} `json:"misc"`
}

func (e CustomError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Processor, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Processor, e.Message)
}

func (e CustomError) Unwrap() error {
	return e.Inner
}

func GenError(proc string, err error, misc map[string]interface{}, messagef string, args ...interface{}) CustomError {
	return CustomError{
		Processor:  proc,
		Inner:      err,
		Message:    fmt.Sprintf(messagef, args...),
		StackTrace: string(debug.Stack()),
		Misc:       misc,
	}
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severities is the fixed label set a prediction draws from.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

const DefaultMediaType = "image"

var defaultMediaTypeJSON = json.RawMessage(`"` + DefaultMediaType + `"`)

// PredictRequest keeps the two recognised fields as raw JSON so they can be
// echoed back exactly as received. A nil field means the key was absent.
type PredictRequest struct {
	URL  json.RawMessage `json:"url,omitempty"`
	Type json.RawMessage `json:"type,omitempty"`
}

// ParsePredictRequest never fails: anything that is not a JSON object
// (empty, malformed, null, array, scalar) yields an empty request.
func ParsePredictRequest(body []byte) PredictRequest {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return PredictRequest{}
	}

	return PredictRequest{
		URL:  fields["url"],
		Type: fields["type"],
	}
}

// MediaURL is the value echoed as media_url (JSON null when absent).
func (r PredictRequest) MediaURL() json.RawMessage {
	if r.URL == nil {
		return json.RawMessage("null")
	}
	return r.URL
}

// MediaType is the value echoed as media_type ("image" when absent).
func (r PredictRequest) MediaType() json.RawMessage {
	if r.Type == nil {
		return defaultMediaTypeJSON
	}
	return r.Type
}

type Prediction struct {
	Count      int             `json:"count"`
	Severity   Severity        `json:"severity"`
	Confidence int             `json:"confidence"`
	MediaURL   json.RawMessage `json:"media_url"`
	MediaType  json.RawMessage `json:"media_type"`
}

// Source returns media_url as a plain string for logs and alerts.
func (p Prediction) Source() string {
	var s string
	if err := json.Unmarshal(p.MediaURL, &s); err == nil {
		return s
	}
	return string(p.MediaURL)
}

type PredictorStats struct {
	Name          string  `json:"name"`
	Predictions   int64   `json:"predictions"`
	Low           int64   `json:"low"`
	Medium        int64   `json:"medium"`
	High          int64   `json:"high"`
	Alerts        int64   `json:"alerts"`
	Errors        int64   `json:"errors"`
	AvgCount      float64 `json:"avgCount"`
	AvgConfidence float64 `json:"avgConfidence"`
	Uptime        int64   `json:"uptime"`
	Timestamp     int64   `json:"timestamp"`
}
