// Package novita is a typed client for the chat completion and
// text-to-speech endpoints, sent through the server-side forwarder.
package novita

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mughesh03/aromatone/pkg/proxy"
)

// DefaultModel is the chat model used for recipe suggestions.
const DefaultModel = "meta-llama/llama-3.1-8b-instruct"

// Text-to-speech defaults.
const (
	DefaultVoice    = "James"
	DefaultLanguage = "en-US"
	DefaultVolume   = 1.2
	DefaultSpeed    = 1.2
)

// ErrNoChoices is returned when a completion carries no choices.
var ErrNoChoices = errors.New("completion returned no choices")

// Upstream sends a JSON body to an API path. *proxy.Forwarder satisfies it.
type Upstream interface {
	Forward(ctx context.Context, path string, body []byte) (*proxy.Response, error)
}

// UpstreamError is a non-2xx answer from the API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.Status, e.Body)
}

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is an OpenAI-compatible completion request.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// SpeechOptions tune text-to-speech. Zero values take the defaults.
type SpeechOptions struct {
	VoiceID  string
	Language string
	Volume   float64
	Speed    float64
}

type speechRequest struct {
	Request speechBody `json:"request"`
}

type speechBody struct {
	VoiceID  string   `json:"voice_id"`
	Language string   `json:"language"`
	Texts    []string `json:"texts"`
	Volume   float64  `json:"volume"`
	Speed    float64  `json:"speed"`
}

// SpeechTask is the async job handle returned by text-to-speech.
type SpeechTask struct {
	TaskID string          `json:"task_id"`
	Raw    json.RawMessage `json:"-"`
}

// Client calls the API through an Upstream.
type Client struct {
	upstream Upstream
	model    string
}

// New creates a client. An empty model means DefaultModel.
func New(upstream Upstream, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{upstream: upstream, model: model}
}

// Model returns the chat model in use.
func (c *Client) Model() string {
	return c.model
}

// ChatCompletion sends messages and returns the content of the first choice.
func (c *Client) ChatCompletion(ctx context.Context, messages ...Message) (string, error) {
	body, err := json.Marshal(ChatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", err
	}
	data, err := c.call(ctx, proxy.PathChatCompletions, body)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// TextToSpeech submits text for narration.
func (c *Client) TextToSpeech(ctx context.Context, text string, opts SpeechOptions) (*SpeechTask, error) {
	req := speechRequest{Request: speechBody{
		VoiceID:  opts.VoiceID,
		Language: opts.Language,
		Texts:    []string{text},
		Volume:   opts.Volume,
		Speed:    opts.Speed,
	}}
	if req.Request.VoiceID == "" {
		req.Request.VoiceID = DefaultVoice
	}
	if req.Request.Language == "" {
		req.Request.Language = DefaultLanguage
	}
	if req.Request.Volume == 0 {
		req.Request.Volume = DefaultVolume
	}
	if req.Request.Speed == 0 {
		req.Request.Speed = DefaultSpeed
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	data, err := c.call(ctx, proxy.PathTextToSpeech, body)
	if err != nil {
		return nil, err
	}

	task := &SpeechTask{Raw: data}
	if err := json.Unmarshal(data, task); err != nil {
		return nil, fmt.Errorf("decode speech task: %w", err)
	}
	return task, nil
}

func (c *Client) call(ctx context.Context, path string, body []byte) ([]byte, error) {
	resp, err := c.upstream.Forward(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, &UpstreamError{Status: resp.Status, Body: string(resp.Body)}
	}
	return resp.Body, nil
}
