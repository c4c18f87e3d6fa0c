package metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Transaction() Transaction
		Mail() Mail
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Transaction interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementRetries(operation string)
		IncrementFailures(operation string)
	}

	// Mail counts notification side-channel attempts. The recipient label is
	// "admin" or "customer".
	Mail interface {
		Sent(recipient string)
		Failed(recipient string)
		ObserveDuration(recipient string, duration time.Duration)
	}
)
