// Package client provides commands that play the saga against a running server
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-saga/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the saga API",
	Long:  `Client commands let you play a session by making real HTTP requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "HTTP server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(startCmd)
	ClientCmd.AddCommand(timelineCmd)
	ClientCmd.AddCommand(eventCmd)
	ClientCmd.AddCommand(decideCmd)
	ClientCmd.AddCommand(characterCmd)
	ClientCmd.AddCommand(historyCmd)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Reason  string          `json:"reason"`
}

// call sends one request and decodes the envelope's data into out
func call(method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(serverAddr, "/")+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		if env.Reason != "" {
			return fmt.Errorf("%s: %s (%s)", env.Code, env.Error, env.Reason)
		}
		return fmt.Errorf("%s: %s", env.Code, env.Error)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func sessionPath(sessionID string, parts ...string) string {
	return "/api/v1/sessions/" + sessionID + "/" + strings.Join(parts, "/")
}

func printCharacter(w io.Writer, c apiv1alpha1.CharacterStateResponse) {
	fmt.Fprintf(w, "%s, %s\n", c.Name, c.TitleDisplayName)
	fmt.Fprintf(w, "  Light: %d  Dark: %d  (%s)\n", c.LightSide, c.DarkSide, c.Alignment)
	fmt.Fprintf(w, "  Emotion: %s\n", c.EmotionDisplayName)
	if c.IsInConflict {
		fmt.Fprintf(w, "  Torn between light and dark\n")
	}
	if c.HasFallen {
		fmt.Fprintf(w, "  Fallen\n")
	}
}
