package publish

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/flowcov/flowcov/internal/logging"
	"github.com/flowcov/flowcov/internal/util"
)

var logger = logging.AppLogger().WithFields(log.Fields{"component": "publisher"})

// Publisher POSTs coverage facts to a sink URL.
type Publisher struct {
	url        string
	httpClient *http.Client
}

// NewPublisher creates a publisher for the specified sink URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{
		url:        url,
		httpClient: &http.Client{Timeout: time.Second * 10},
	}
}

// Publish ships the specified fact to the sink, retrying transient failures
// with exponential backoff.
func (p *Publisher) Publish(fact Fact) error {
	data, err := json.Marshal(fact)
	if err != nil {
		return errors.Wrapf(err, "unable to marshal fact %s", fact.Name)
	}

	f := func() error {
		response, err := p.httpClient.Post(p.url, "application/json", bytes.NewReader(data))
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode > 299 || response.StatusCode < 200 {
			return errors.Errorf("Status code: %d, error: %s", response.StatusCode, response.Status)
		}
		return nil
	}

	err = util.ApplyWithBackoff(f)
	if err != nil {
		return errors.Wrapf(err, "unable to publish fact %s to %s", fact.Name, p.url)
	}

	logger.Infof("successfully published fact '%s' to %s", fact.Name, p.url)
	return nil
}
