package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// probeHTTP reports whether the URL answers with any HTTP status within
// the timeout - replaceable in tests.
var probeHTTP = func(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

// Status handles the status command: report the server's control-plane
// state, access URLs, and whether the published services answer.
func Status(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	cloud, err := cloudClientFromEnv()
	if err != nil {
		return err
	}

	instance, err := cloud.GetServerByName(ctx, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to look up server %q: %w", cfg.Name, err)
	}

	if instance == nil {
		fmt.Printf("no server named %q exists\n", cfg.Name)
		return nil
	}

	webUIURL := fmt.Sprintf("http://%s:%d", instance.PublicIP, cfg.WebUIPort)

	fmt.Printf("Name:      %s\n", instance.Name)
	fmt.Printf("ID:        %d\n", instance.ID)
	fmt.Printf("Status:    %s\n", instance.Status)
	fmt.Printf("IP:        %s\n", instance.PublicIP)
	fmt.Printf("Web UI:    %s (%s)\n", webUIURL, reachability(ctx, instance.PublicIP, webUIURL))
	// The inference API is bound to the server's loopback; only the web UI
	// is published, so there is nothing to probe from here.
	fmt.Printf("Inference: localhost:%d on the server (not published externally)\n", cfg.InferencePort)
	fmt.Printf("Model:     %s\n", cfg.Model)

	return nil
}

// reachability probes the service when the server has a public address.
func reachability(ctx context.Context, publicIP, url string) string {
	if publicIP == "" {
		return "unknown"
	}
	if probeHTTP(ctx, url) {
		return "reachable"
	}
	return "unreachable"
}
