package synth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/emovoice/emovoice/internal/config"
	"github.com/emovoice/emovoice/internal/emotion"
	"github.com/emovoice/emovoice/internal/httputil"
)

const (
	openaiSpeechURL = "https://api.openai.com/v1/audio/speech"
	defaultModel    = "gpt-4o-mini-tts"
)

// defaultVoices picks an OpenAI voice per emotion, mirroring the idea of
// emotion-matched neural voices. Config can override per emotion.
var defaultVoices = map[emotion.Emotion]string{
	emotion.Happy:      "nova",
	emotion.Excited:    "shimmer",
	emotion.Sad:        "onyx",
	emotion.Frustrated: "echo",
	emotion.Neutral:    "alloy",
}

// OpenAI synthesizes through the OpenAI speech API. The rate delta maps
// to the API's speed multiplier; volume is applied downstream at
// playback; pitch is carried by the per-emotion voice choice, since the
// API has no pitch control.
type OpenAI struct {
	apiKey string
	model  string
	voices map[string]string
}

// NewOpenAI builds the OpenAI backend from config.
func NewOpenAI(cfg config.Config) *OpenAI {
	model := cfg.OpenAI.Model
	if model == "" {
		model = defaultModel
	}
	return &OpenAI{
		apiKey: cfg.Credentials.OpenAIAPIKey,
		model:  model,
		voices: cfg.OpenAI.Voices,
	}
}

func (o *OpenAI) Name() string { return "openai" }

// Fingerprint covers the model and the voice resolved for the emotion,
// so reconfiguring either does not replay stale cached audio.
func (o *OpenAI) Fingerprint(em emotion.Emotion) string {
	return "model=" + o.model + "/voice=" + o.Voice(em)
}

// Voice returns the voice used for an emotion: config override first,
// then the built-in emotion table, then the neutral voice.
func (o *OpenAI) Voice(e emotion.Emotion) string {
	if v, ok := o.voices[string(e)]; ok && v != "" {
		return v
	}
	if v, ok := defaultVoices[e]; ok {
		return v
	}
	return defaultVoices[emotion.Neutral]
}

// Speed converts a rate delta percent to the API's speed multiplier,
// clamped to the documented 0.25-4.0 range.
func Speed(ratePercent float64) float64 {
	speed := 1 + ratePercent/100
	if speed < 0.25 {
		return 0.25
	}
	if speed > 4.0 {
		return 4.0
	}
	return speed
}

// speechRequest is the JSON body for the OpenAI speech API.
type speechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format"`
	Speed          float64 `json:"speed,omitempty"`
}

// Synthesize calls the speech API and returns raw WAV bytes.
func (o *OpenAI) Synthesize(req Request) ([]byte, error) {
	body := speechRequest{
		Model:          o.model,
		Input:          req.Text,
		Voice:          o.Voice(req.Emotion),
		ResponseFormat: "wav",
	}
	if speed := Speed(req.Params.Rate); speed != 1.0 {
		body.Speed = speed
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", openaiSpeechURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := httputil.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai tts request: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp, "openai tts"); err != nil {
		return nil, err
	}

	wavData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return wavData, nil
}
