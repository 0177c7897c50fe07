package util

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryOptions is a fixed-count, fixed-delay retry policy.
type RetryOptions struct {
	Attempts int
	Delay    time.Duration
	Timeout  time.Duration
}

func DefaultRetryOptions() RetryOptions {
	return RetryOptions{Attempts: 3, Delay: 5 * time.Second, Timeout: 30 * time.Second}
}

// GetBytes fetches url, retrying failed attempts after opt.Delay.
// The last error is returned once every attempt has failed.
func GetBytes(url string, opt RetryOptions) ([]byte, error) {
	attempts := max(opt.Attempts, 1)
	client := http.Client{Timeout: opt.Timeout}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := getOnce(&client, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		logrus.WithFields(logrus.Fields{"url": url, "attempt": attempt}).Warnf("fetch failed: %v", err)
		if attempt < attempts {
			time.Sleep(opt.Delay)
		}
	}
	return nil, fmt.Errorf("fetching %s after %d attempts: %w", url, attempts, lastErr)
}

func getOnce(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
