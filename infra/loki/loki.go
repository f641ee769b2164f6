package loki

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	pushPath      = "/loki/api/v1/push"
	flushSize     = 20
	flushInterval = time.Second
)

// Writer buffers log lines and ships them to Loki's push API as one stream.
// It is meant to sit behind a slog handler, one JSON record per line.
type Writer struct {
	url    string
	labels map[string]string
	client *http.Client
	mu     sync.Mutex
	buf    [][]string
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewWriter returns a Writer pushing to baseURL (e.g. http://loki:3100) with
// the given stream labels. Returns nil when baseURL is empty.
func NewWriter(baseURL string, labels map[string]string) *Writer {
	if baseURL == "" {
		return nil
	}
	w := &Writer{
		url:    strings.TrimSuffix(baseURL, "/") + pushPath,
		labels: labels,
		client: &http.Client{Timeout: 5 * time.Second},
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	go w.flushLoop()
	return w
}

// Write implements io.Writer. Empty lines are dropped.
func (w *Writer) Write(p []byte) (int, error) {
	now := strconv.FormatInt(time.Now().UnixNano(), 10)
	w.mu.Lock()
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		w.buf = append(w.buf, []string{now, string(line)})
	}
	needFlush := len(w.buf) >= flushSize
	w.mu.Unlock()

	if needFlush {
		w.flush()
	}
	return len(p), nil
}

func (w *Writer) flushLoop() {
	for {
		select {
		case <-w.done:
			return
		case <-w.ticker.C:
			w.flush()
		}
	}
}

type pushStream struct {
	Stream map[string]string `json:"stream"`
	Values [][]string        `json:"values"`
}

type pushRequest struct {
	Streams []pushStream `json:"streams"`
}

func (w *Writer) flush() {
	w.mu.Lock()
	if len(w.buf) == 0 {
		w.mu.Unlock()
		return
	}
	values := w.buf
	w.buf = nil
	w.mu.Unlock()

	raw, err := json.Marshal(pushRequest{Streams: []pushStream{{Stream: w.labels, Values: values}}})
	if err != nil {
		return
	}
	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(raw))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

// Close stops the background flusher and pushes whatever is still buffered.
func (w *Writer) Close() error {
	w.once.Do(func() {
		w.ticker.Stop()
		close(w.done)
		w.flush()
	})
	return nil
}
