package notify

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// LineNotifier sends alert messages through the LINE Notify API. Delivery is
// best effort: a missing token skips the send, and transport failures are
// logged and swallowed so ingestion is never failed by the messaging side.
type LineNotifier struct {
	token    string
	endpoint string
	client   *http.Client
}

func NewLineNotifier(token, endpoint string) *LineNotifier {
	return &LineNotifier{
		token:    token,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *LineNotifier) SendAlert(value float64, status string) {
	if n.token == "" {
		log.Printf("LINE_NOTIFY_TOKEN not set, skipping %s alert (smoke=%.1f)", status, value)
		return
	}

	msg := fmt.Sprintf("🚨 %s! smoke level %.1f", status, value)

	form := url.Values{}
	form.Set("message", msg)

	req, err := http.NewRequest(http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("Failed to build LINE notify request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("Failed to send LINE notification: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("LINE notify returned status %d", resp.StatusCode)
		return
	}

	log.Printf("Sent %s alert via LINE notify", status)
}
