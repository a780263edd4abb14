package expopush

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/festibalparty/festibal-push-backend/pkg/logger"
	"go.uber.org/multierr"
)

// RoundTripper logs every outgoing push call with its request and response
// bodies so failed deliveries can be traced back per request.
type RoundTripper struct {
	Base http.RoundTripper
}

var _ http.RoundTripper = (*RoundTripper)(nil)

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	t0 := time.Now()

	var (
		ctx  = req.Context()
		resp *http.Response
		err  error
	)

	var (
		reqBody    []byte
		reqBodyErr error
	)
	if req.Body != nil {
		reqBody, reqBodyErr = io.ReadAll(req.Body)
		if reqBodyErr != nil {
			err = multierr.Append(err, fmt.Errorf("error read request body: %w", reqBodyErr))
			reqBody = []byte("")
		}

		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	resp, roundTripErr := r.Base.RoundTrip(req.WithContext(ctx))
	if roundTripErr != nil {
		err = multierr.Append(err, fmt.Errorf("error doing actual request: %w", roundTripErr))
	}

	if resp == nil {
		resp = &http.Response{}
	}

	var (
		respBody    []byte
		respBodyErr error
	)
	if resp.Body != nil {
		respBody, respBodyErr = io.ReadAll(resp.Body)
		if respBodyErr != nil {
			err = multierr.Append(err, fmt.Errorf("error read response body: %w", respBodyErr))
			respBody = []byte{}
		}

		resp.Body = io.NopCloser(bytes.NewBuffer(respBody))
	}

	errStr := ""
	if err != nil {
		errStr = err.Error()
	}

	logger.Access(ctx, logger.AccessLogData{
		Path:        req.URL.String(),
		ReqBody:     string(reqBody),
		RespBody:    string(respBody),
		Error:       errStr,
		ElapsedTime: time.Since(t0).Milliseconds(),
	})

	if roundTripErr != nil {
		return resp, err
	}

	return resp, nil
}
