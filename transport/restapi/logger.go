package restapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/satori/uuid"
	"github.com/festibalparty/festibal-push-backend/pkg/logger"
	"github.com/festibalparty/festibal-push-backend/pkg/respbuilder"
	"github.com/segmentio/encoding/json"
	"go.uber.org/multierr"
)

// requestLogger assigns a trace id to every request, injects it for both the
// logger and the response builder, and logs the full request/response pair.
func requestLogger(skipFunc func(r *http.Request) bool, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if skipFunc(r) {
			next.ServeHTTP(w, r)
			return
		}

		var globalErr error
		t1 := time.Now().UTC()
		ctx := r.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		traceID := uuid.NewV4().String()

		ctx = logger.Inject(ctx, logger.Tracer{
			RemoteAddr: r.RemoteAddr,
			AppTraceID: traceID,
		})
		ctx = respbuilder.Inject(ctx, respbuilder.Tracer{
			RemoteAddr: r.RemoteAddr,
			AppTraceID: traceID,
		})
		r = r.WithContext(ctx)

		reqBody := make([]byte, 0)
		if r.Body != nil {
			defer func() {
				if _err := r.Body.Close(); _err != nil {
					globalErr = multierr.Append(globalErr, fmt.Errorf("cannot close request body: %w", _err))
				}
			}()

			var err error
			reqBody, err = io.ReadAll(r.Body)
			if err != nil {
				globalErr = multierr.Append(globalErr, fmt.Errorf("error read request body: %w", err))
				reqBody = []byte(``)
			}

			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		var reqBodyData interface{}
		if _err := json.Unmarshal(reqBody, &reqBodyData); _err != nil {
			reqBodyData = string(reqBody)
		}

		// continue serve, and record the response
		rec := httptest.NewRecorder()
		next.ServeHTTP(rec, r)

		respBody := rec.Body.Bytes()

		var respBodyData interface{}
		if _err := json.Unmarshal(respBody, &respBodyData); _err != nil {
			respBodyData = string(respBody)
		}

		for k, v := range rec.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(rec.Code)
		if _, err := bytes.NewReader(respBody).WriteTo(w); err != nil {
			globalErr = multierr.Append(globalErr, fmt.Errorf("write response body error: %w", err))
		}

		errStr := ""
		if globalErr != nil {
			errStr = globalErr.Error()
		}

		logger.Access(ctx, logger.AccessLogData{
			Path:        r.URL.Path,
			ReqBody:     reqBodyData,
			RespBody:    respBodyData,
			Error:       errStr,
			ElapsedTime: time.Since(t1).Milliseconds(),
		})
	}
}
