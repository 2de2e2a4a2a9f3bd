package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Enable debug mode
	Debug bool

	// Default headers
	Headers map[string]string

	// Timeout of a single request. Zero means no timeout other than the context deadline.
	Timeout time.Duration
}

type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", baseURL)
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	if len(cf.Headers) == 0 {
		cf.Headers = make(map[string]string)
	}
	return &Client{
		baseURL: parsedBaseURL,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	path   string
	method string
	Body   []byte
	Query  url.Values
	Header map[string]string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// IsSuccess reports whether the response has a 2xx status code.
func (r *HttpResponse) IsSuccess() bool {
	return r.StatusCode() >= fasthttp.StatusOK && r.StatusCode() < fasthttp.StatusMultipleChoices
}

func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	if !strings.HasPrefix(contentType, "application/json") {
		return errors.Errorf("unsupported content type: %s, contents: %q", contentType, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal json body from %s, %q", r.URL, string(body))
	}
	return nil
}

func (h *Client) request(ctx context.Context, reqOptions RequestOptions) (*HttpResponse, error) {
	start := time.Now()
	req := fasthttp.AcquireRequest()
	req.Header.SetMethod(reqOptions.method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}

	parsedUrl := h.BaseURL()
	if reqOptions.path != "" {
		parsedUrl.Path = path.Join(parsedUrl.Path, reqOptions.path)
	}
	if len(reqOptions.Query) > 0 {
		query := parsedUrl.Query()
		for k, values := range reqOptions.Query {
			for _, v := range values {
				query.Add(k, v)
			}
		}
		parsedUrl.RawQuery = query.Encode()
	}
	url := parsedUrl.String()
	req.SetRequestURI(url)
	if reqOptions.Body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(reqOptions.Body)
	}

	resp := fasthttp.AcquireResponse()
	startDo := time.Now()

	defer func() {
		if h.Debug {
			logger := logger.With(
				slog.String("method", reqOptions.method),
				slog.String("url", url),
				slog.Duration("duration", time.Since(start)),
				slog.Duration("latency", time.Since(startDo)),
				slog.Int("req_content_length", req.Header.ContentLength()),
				slog.Int("status_code", resp.StatusCode()),
				slog.Int("resp_content_length", len(resp.Body())),
			)
			logger.InfoContext(ctx, "Finished make request", slog.String("package", "httpclient"))
		}

		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	if err := h.do(ctx, req, resp); err != nil {
		return nil, errors.Wrapf(err, "url: %s", url)
	}

	httpResponse := HttpResponse{
		URL: url,
	}
	resp.CopyTo(&httpResponse.Response)

	return &httpResponse, nil
}

// do sends the request with the earliest of the context deadline and the client timeout.
func (h *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	deadline, ok := ctx.Deadline()
	if h.Timeout > 0 {
		if timeoutAt := time.Now().Add(h.Timeout); !ok || timeoutAt.Before(deadline) {
			deadline, ok = timeoutAt, true
		}
	}
	if ok {
		return errors.WithStack(fasthttp.DoDeadline(req, resp, deadline))
	}
	return errors.WithStack(fasthttp.Do(req, resp))
}

// BaseURL returns the cloned base URL of the client.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

func (h *Client) Do(ctx context.Context, method, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = method
	return h.request(ctx, reqOptions)
}

func (h *Client) Get(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodGet
	return h.request(ctx, reqOptions)
}

func (h *Client) Post(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodPost
	return h.request(ctx, reqOptions)
}
