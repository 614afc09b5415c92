package shared

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// HttpClient builds the outbound client used for quote, search and FX calls.
// Certificate verification can be disabled via IGNORE_SSL_CERTS for setups
// behind intercepting proxies.
func HttpClient() *http.Client {
	client := &http.Client{Timeout: 8 * time.Second}

	ignoreSSL := os.Getenv("IGNORE_SSL_CERTS")
	if strings.ToLower(ignoreSSL) == "true" {
		log.Println("Warning: SSL certificate verification disabled")
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return client
}
