package respbuilder

import (
	"net/http"

	"github.com/segmentio/encoding/json"
)

func WriteJSON(httpStatus int, rw http.ResponseWriter, r *http.Request, data interface{}) {
	tracer := MustExtract(r.Context())

	rw.Header().Set("Content-Type", "application/json")
	if tracer.AppTraceID != "" {
		rw.Header().Set("Tracer-ID", tracer.AppTraceID)
	}
	rw.WriteHeader(httpStatus)

	enc := json.NewEncoder(rw)
	err := enc.Encode(data)
	if err != nil {
		errPayload, _ := json.Marshal(HTTPError{
			Ok:      false,
			Code:    ReasonMap[ErrUnhandled].Code,
			Message: err.Error(),
			TraceID: tracer.AppTraceID,
		})

		_, _ = rw.Write(errPayload)
		return
	}
}
