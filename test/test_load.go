package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://localhost:8080"
	workers      = 50
	loadDuration = 10 * time.Second
)

type HashResponse struct {
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
	Source    string `json:"source"`
}

func main() {
	fmt.Println("🚀 Starting hash server load test...")

	// Step 1: Make sure the server is up
	if err := checkHealth(); err != nil {
		log.Fatalf("Health check failed: %v", err)
	}
	fmt.Println("✅ Server is healthy")

	// Step 2: Validate a single hash response
	sample, err := fetchHash()
	if err != nil {
		log.Fatalf("Hash request failed: %v", err)
	}
	fmt.Printf("✅ Sample hash from %s: %s...\n", sample.Source, sample.Hash[:16])

	// Step 3: Hammer /hash and report throughput
	fmt.Printf("📤 Running load: %d workers for %v...\n", workers, loadDuration)
	startTime := time.Now()
	total, failures := runLoad()
	elapsed := time.Since(startTime)

	fmt.Printf("⏱️  Completed %d requests (%d failed) in %v\n", total, failures, elapsed)
	fmt.Printf("📊 Throughput: %.0f req/s\n", float64(total)/elapsed.Seconds())

	if failures > 0 {
		log.Fatalf("load run had %d failed requests", failures)
	}
	fmt.Println("✅ Load test completed successfully!")
}

func checkHealth() error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		return fmt.Errorf("unexpected health response %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func fetchHash() (*HashResponse, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL + "/hash")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("hash request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var hashResp HashResponse
	if err := json.NewDecoder(resp.Body).Decode(&hashResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if len(hashResp.Hash) != 64 {
		return nil, fmt.Errorf("malformed hash in response: %q", hashResp.Hash)
	}
	return &hashResp, nil
}

func runLoad() (int64, int64) {
	var total, failures int64

	client := &http.Client{Timeout: 10 * time.Second}
	deadline := time.Now().Add(loadDuration)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				atomic.AddInt64(&total, 1)

				resp, err := client.Get(baseURL + "/hash")
				if err != nil {
					atomic.AddInt64(&failures, 1)
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					atomic.AddInt64(&failures, 1)
				}
			}
		}()
	}
	wg.Wait()

	return total, failures
}
