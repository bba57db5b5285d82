package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type target struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	WantStatus int    `json:"want_status"`
	Critical   bool   `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type result struct {
	Target   target
	Status   int
	Match    bool
	Err      error
	Duration time.Duration
}

// smokecheck walks a list of endpoints against a running instance and
// reports status and latency per target. Exit code 1 when a critical
// target misses its expected status.
func main() {
	var (
		base        string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "smokecheck", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	failedCritical := false

	for _, t := range targets {
		res := check(client, base, t)
		status := "ok"
		if res.Err != nil {
			status = "error: " + res.Err.Error()
		} else if !res.Match {
			status = fmt.Sprintf("status %d, want %d", res.Status, res.Target.WantStatus)
		}
		fmt.Printf("%-6s %-40s %8s  %s\n", t.Method, t.Path, res.Duration.Round(time.Millisecond), status)
		if t.Critical && (res.Err != nil || !res.Match) {
			failedCritical = true
		}
	}

	if failedCritical {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	for i := range cfg.Targets {
		if cfg.Targets[i].Method == "" {
			cfg.Targets[i].Method = http.MethodGet
		}
		if cfg.Targets[i].WantStatus == 0 {
			cfg.Targets[i].WantStatus = http.StatusOK
		}
	}
	return cfg.Targets, nil
}

func check(client *http.Client, base string, t target) result {
	req, err := http.NewRequest(t.Method, base+t.Path, nil)
	if err != nil {
		return result{Target: t, Err: err}
	}

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		return result{Target: t, Err: err, Duration: duration}
	}
	defer resp.Body.Close()

	return result{
		Target:   t,
		Status:   resp.StatusCode,
		Match:    resp.StatusCode == t.WantStatus,
		Duration: duration,
	}
}
