package sdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ayunami2000/sdpictures/config"
	"github.com/sirupsen/logrus"
)

var ErrResponseCode = errors.New("got unexpected response code")

// ResponseError reports a non-2xx answer from the image service.
type ResponseError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrResponseCode, e.Endpoint, e.Status)
}

func (e *ResponseError) Unwrap() error {
	return ErrResponseCode
}

type httpTransport struct {
	base http.RoundTripper
}

func (t *httpTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()
		return nil, &ResponseError{Endpoint: req.URL.Path, StatusCode: res.StatusCode, Status: res.Status}
	}

	return res, nil
}

// Client talks to an AUTOMATIC1111 style /sdapi/v1 server. The address is
// read from the config store on every call so address changes apply at once.
type Client struct {
	cfg        *config.Store
	httpClient *http.Client
}

func NewClient(cfg *config.Store) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &httpTransport{base: http.DefaultTransport},
		},
	}
}

func (c *Client) getSDUrl() string {
	return c.cfg.Get().Address
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.getSDUrl()+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logrus.WithFields(logrus.Fields{"method": method, "url": req.URL.String()}).Debug("Querying image service")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer res.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) GetModels(ctx context.Context) ([]Model, error) {
	var models []Model
	if err := c.do(ctx, http.MethodGet, "/sdapi/v1/sd-models", nil, &models); err != nil {
		return nil, err
	}

	return models, nil
}

func (c *Client) GetSamplers(ctx context.Context) ([]Sampler, error) {
	var samplers []Sampler
	if err := c.do(ctx, http.MethodGet, "/sdapi/v1/samplers", nil, &samplers); err != nil {
		return nil, err
	}

	return samplers, nil
}

func (c *Client) GetOptions(ctx context.Context) (*Options, error) {
	var options Options
	if err := c.do(ctx, http.MethodGet, "/sdapi/v1/options", nil, &options); err != nil {
		return nil, err
	}

	return &options, nil
}

// SetModel asks the service to switch checkpoints.
func (c *Client) SetModel(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/sdapi/v1/options", &Options{SDModelCheckpoint: name}, nil)
}

func (c *Client) UnloadCheckpoint(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/sdapi/v1/unload-checkpoint", "", nil)
}

func (c *Client) ReloadCheckpoint(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/sdapi/v1/reload-checkpoint", "", nil)
}

func (c *Client) Txt2Img(ctx context.Context, data *Txt2ImgRequest) (*Txt2ImgResponse, error) {
	var res Txt2ImgResponse
	if err := c.do(ctx, http.MethodPost, "/sdapi/v1/txt2img", data, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// FetchCatalog collects the model titles and the active checkpoint.
func (c *Client) FetchCatalog(ctx context.Context) (*Catalog, error) {
	models, err := c.GetModels(ctx)
	if err != nil {
		return nil, err
	}

	options, err := c.GetOptions(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{Current: options.SDModelCheckpoint}
	for _, m := range models {
		catalog.Models = append(catalog.Models, m.Title)
	}

	return catalog, nil
}
