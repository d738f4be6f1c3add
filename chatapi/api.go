package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ayunami2000/sdpictures/config"
	"github.com/sirupsen/logrus"
)

var ErrResponseCode = errors.New("got unexpected response code")
var ErrEmptyResponse = errors.New("text engine returned no text")
var ErrModelControlUnsupported = errors.New("model loading is not supported by this chat API mode")

type httpTransport struct{}

func (t *httpTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, fmt.Errorf("%w: %s %s", ErrResponseCode, req.URL.Path, res.Status)
	}

	return res, nil
}

// Client is the host text engine: it writes replies and can drop or reload
// its model when the image service needs the VRAM.
type Client struct {
	cfg        *config.Store
	httpClient *http.Client
}

func NewClient(cfg *config.Store) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: &httpTransport{}},
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.Get().ChatURL, "/")+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer res.Body.Close()

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.EqualFold(c.cfg.Get().ChatAPIMode, "openai") {
		return c.GenerateOpenAI(ctx, &OpenAIRequest{
			Prompt:      prompt,
			MaxTokens:   256,
			Temperature: 0.7,
			TopP:        1.0,
			User:        "https://github.com/ayunami2000/sdpictures",
		})
	}

	return c.GenerateKobold(ctx, &KoboldRequest{
		Prompt:      prompt,
		MaxLength:   256,
		Temperature: 0.7,
		TopP:        1.0,
	})
}

func (c *Client) GenerateKobold(ctx context.Context, data *KoboldRequest) (string, error) {
	var resParsed KoboldResponse
	if err := c.post(ctx, "/api/v1/generate", data, &resParsed); err != nil {
		return "", err
	}

	if len(resParsed.Results) < 1 {
		return "", ErrEmptyResponse
	}

	return resParsed.Results[0].Text, nil
}

func (c *Client) GenerateOpenAI(ctx context.Context, data *OpenAIRequest) (string, error) {
	if data.Model == "" {
		data.Model = c.cfg.Get().ChatModel
	}

	var resParsed OpenAIResponse
	if err := c.post(ctx, "/v1/completions", data, &resParsed); err != nil {
		return "", err
	}

	if len(resParsed.Choices) < 1 {
		return "", ErrEmptyResponse
	}

	return resParsed.Choices[0].Text, nil
}

func (c *Client) model(ctx context.Context, action string) error {
	cfg := c.cfg.Get()
	if strings.EqualFold(cfg.ChatAPIMode, "openai") {
		return ErrModelControlUnsupported
	}

	logrus.WithFields(logrus.Fields{"action": action, "model": cfg.ChatModel}).Info("Requesting the text engine to change its model")

	data := &ModelRequest{Action: action}
	if action == "load" {
		data.ModelName = cfg.ChatModel
	}

	return c.post(ctx, "/api/v1/model", data, nil)
}

// LoadModel reloads the configured text model.
func (c *Client) LoadModel(ctx context.Context) error {
	return c.model(ctx, "load")
}

// UnloadModel frees the VRAM held by the text model.
func (c *Client) UnloadModel(ctx context.Context) error {
	return c.model(ctx, "unload")
}
