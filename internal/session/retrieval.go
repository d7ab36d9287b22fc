package session

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

var (
	timeout           = time.Second * 30
	r       retriever = &defaultRetriever{}
)

type retriever interface {
	getRawSession(url string) ([]byte, error)
}

type defaultRetriever struct {
}

func (r *defaultRetriever) getRawSession(url string) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = timeout

	response, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode > 299 || response.StatusCode < 200 {
		return nil, errors.Errorf("Status code: %d, error: %s", response.StatusCode, response.Status)
	}
	return io.ReadAll(response.Body)
}

// RetrieveSession retrieves a recorded session from the specified URL which
// can be a CI artifact store or a cloud storage bucket.
func RetrieveSession(url string) (Session, error) {
	// append version string to the URL to avoid any caching issues when retrieving the session
	urlWithTimestamp := fmt.Sprintf("%s?version=%d", url, time.Now().UnixNano()/int64(time.Millisecond))
	rawSession, err := r.getRawSession(urlWithTimestamp)
	if err != nil {
		return Session{}, err
	}
	return parseSession(rawSession)
}
