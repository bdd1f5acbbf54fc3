package http

import (
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type rateLimitedTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

var _ http.RoundTripper = (*rateLimitedTransport)(nil)

// RoundTrip waits for the limiter, so every retry attempt is paced as well.
func (t *rateLimitedTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	err := t.limiter.Wait(request.Context())
	if err != nil {
		return nil, err
	}

	return t.next.RoundTrip(request)
}

type logTransport struct {
	logger *log.Entry
	next   http.RoundTripper
}

var _ http.RoundTripper = (*logTransport)(nil)

func (t *logTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(request)
	logger := t.logger.WithFields(log.Fields{"method": request.Method, "url": request.URL.String()})

	if err == nil {
		logger = logger.WithField("status", resp.StatusCode)
	} else {
		logger = logger.WithError(err)
	}

	logger.Debug("performed HTTP request")

	return resp, err
}

func newTransport(limiter *rate.Limiter, logger *log.Entry) http.RoundTripper {
	var transport http.RoundTripper = cleanhttp.DefaultPooledTransport()

	if logger != nil {
		transport = &logTransport{logger: logger, next: transport}
	}

	if limiter != nil {
		transport = &rateLimitedTransport{limiter: limiter, next: transport}
	}

	return transport
}
