// Command test runs smoke checks against a running super agent server.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	styleTest    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const defaultMessage = "Create a campaign brief for our sustainable fashion launch"

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			// streamed scripts run in real time
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the agent")
	testType := flag.String("test", "all", "Test type: all, health, agent-card, a2a, rest, stream, custom")
	message := flag.String("message", "", "Marketing request to send (for custom test)")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("Marketing Super Agent - Smoke Tests")
	fmt.Printf("%s\n\n", styleTest.Render("Base URL: "+client.baseURL))

	var ok bool
	switch *testType {
	case "all":
		client.runAllTests()
		return
	case "health":
		ok = client.testHealthCheck()
	case "agent-card":
		ok = client.testAgentCard()
	case "a2a":
		ok = client.testA2A(defaultMessage)
	case "rest":
		ok = client.testREST(defaultMessage)
	case "stream":
		ok = client.testStream(defaultMessage)
	case "custom":
		if *message == "" {
			printError("A message is required for the custom test. Use -message")
			os.Exit(1)
		}
		ok = client.testA2A(*message)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, agent-card, a2a, rest, stream, custom")
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Agent Card", tc.testAgentCard},
		{"A2A Message", func() bool { return tc.testA2A(defaultMessage) }},
		{"REST Session", func() bool { return tc.testREST(defaultMessage) }},
		{"SSE Stream", func() bool { return tc.testStream("Generate a creative ad") }},
	}

	passed, failed := 0, 0
	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Passed: %d", passed)))
	fmt.Println(styleError.Render(fmt.Sprintf("Failed: %d", failed)))
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Health Check")

	body, status, err := tc.do(http.MethodGet, "/health", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK || string(body) != "OK" {
		printError(fmt.Sprintf("Expected 200 OK, got %d %q", status, string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testAgentCard() bool {
	printTestHeader("Agent Card")

	body, status, err := tc.do(http.MethodGet, "/.well-known/agent.json", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var card map[string]any
	if err := json.Unmarshal(body, &card); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	for _, field := range []string{"name", "description", "url", "version", "capabilities", "skills"} {
		if _, ok := card[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Agent card is valid")
	printJSON(body)
	return true
}

func (tc *TestClient) testA2A(text string) bool {
	printTestHeader("A2A message/send")
	fmt.Printf("%s %s\n\n", styleLabel.Render("Message:"), text)

	request := map[string]any{
		"jsonrpc": "2.0",
		"id":      fmt.Sprintf("smoke-%d", time.Now().Unix()),
		"method":  "message/send",
		"params": map[string]any{
			"message": map[string]any{
				"kind":  "message",
				"role":  "user",
				"parts": []map[string]any{{"kind": "text", "text": text}},
			},
			"configuration": map[string]any{"blocking": true},
		},
	}

	body, status, err := tc.do(http.MethodPost, "/a2a/superagent", request)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var response struct {
		Result *struct {
			ContextID string `json:"contextId"`
			Status    struct {
				State   string `json:"state"`
				Message struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"message"`
			} `json:"status"`
			Artifacts []struct {
				Name string `json:"name"`
			} `json:"artifacts"`
		} `json:"result"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if len(response.Error) > 0 {
		printError("Request returned an error: " + string(response.Error))
		return false
	}
	if response.Result == nil || response.Result.Status.State != "completed" {
		printError("Expected a completed task")
		printJSON(body)
		return false
	}

	printSuccess("Task completed in context " + response.Result.ContextID)
	fmt.Println(strings.Repeat("=", 80))
	for _, p := range response.Result.Status.Message.Parts {
		fmt.Println(p.Text)
	}
	fmt.Println(strings.Repeat("=", 80))
	for _, a := range response.Result.Artifacts {
		fmt.Printf("%s %s\n", styleLabel.Render("Artifact:"), a.Name)
	}
	return true
}

func (tc *TestClient) testREST(text string) bool {
	printTestHeader("REST session")

	id, ok := tc.createSession()
	if !ok {
		return false
	}

	body, status, err := tc.do(http.MethodPost, "/sessions/"+id+"/messages", map[string]string{"text": text})
	if err != nil || status != http.StatusOK {
		printError(fmt.Sprintf("Send message failed: status %d, err %v", status, err))
		return false
	}

	var play struct {
		Route struct {
			Category string   `json:"category"`
			Agents   []string `json:"agents"`
		} `json:"route"`
		Session struct {
			StatusLine string            `json:"status_line"`
			History    []json.RawMessage `json:"history"`
		} `json:"session"`
	}
	if err := json.Unmarshal(body, &play); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if len(play.Session.History) != 3 {
		printError(fmt.Sprintf("Expected 3 history entries, got %d", len(play.Session.History)))
		return false
	}

	printSuccess(fmt.Sprintf("Routed to %s (%s), %s",
		play.Route.Category, strings.Join(play.Route.Agents, ", "), play.Session.StatusLine))
	return true
}

func (tc *TestClient) testStream(text string) bool {
	printTestHeader("SSE stream")

	id, ok := tc.createSession()
	if !ok {
		return false
	}

	payload, _ := json.Marshal(map[string]string{"text": text})
	resp, err := tc.client.Post(tc.baseURL+"/sessions/"+id+"/messages?stream=1", "application/json", bytes.NewReader(payload))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	events := 0
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		name, found := strings.CutPrefix(line, "event:")
		if !found {
			continue
		}
		events++
		fmt.Printf("  %s\n", styleTest.Render(name))
		if name == "done" {
			printSuccess(fmt.Sprintf("Stream finished after %d events", events))
			return true
		}
		if name == "error" {
			printError("Stream reported an error")
			return false
		}
	}
	if err := scanner.Err(); err != nil {
		printError(fmt.Sprintf("Read stream: %v", err))
	} else {
		printError("Stream ended without a done event")
	}
	return false
}

func (tc *TestClient) createSession() (string, bool) {
	body, status, err := tc.do(http.MethodPost, "/sessions", nil)
	if err != nil || status != http.StatusCreated {
		printError(fmt.Sprintf("Create session failed: status %d, err %v", status, err))
		return "", false
	}
	var st struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &st); err != nil || st.ID == "" {
		printError("Create session returned no id")
		return "", false
	}
	fmt.Printf("%s %s\n", styleLabel.Render("Session:"), st.ID)
	return st.ID, true
}

func (tc *TestClient) do(method, path string, payload any) ([]byte, int, error) {
	url := tc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return body, resp.StatusCode, err
}

func printHeader(text string) {
	bar := strings.Repeat("=", len(text)+4)
	fmt.Println(styleHeader.Render(bar))
	fmt.Println(styleHeader.Render("= " + text + " ="))
	fmt.Println(styleHeader.Render(bar))
	fmt.Println()
}

func printTestHeader(text string) {
	fmt.Println(styleTest.Render("[TEST] " + text))
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Println(styleSuccess.Render("✓ " + text))
}

func printError(text string) {
	fmt.Println(styleError.Render("✗ " + text))
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%s\n%s\n", styleLabel.Render("Response:"), prettyJSON.String())
	}
}
