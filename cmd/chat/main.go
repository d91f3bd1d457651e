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

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"

	"github.com/fatih/color"
)

var (
	serverURL = flag.String("server", "http://localhost:8001", "Chat API base URL")
	email     = flag.String("email", "", "Caller email (enables personal lookups)")
	name      = flag.String("name", "", "Caller display name")
	userType  = flag.String("user-type", "traveler", "Caller type: owner or traveler")
)

func main() {
	flag.Parse()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Println(boldGreen("🏠 AI Travel Assistant"))
	fmt.Printf("Server: %s\n", boldCyan(*serverURL))
	if *email != "" {
		fmt.Printf("Signed in as: %s (%s)\n", boldCyan(*email), *userType)
	}
	fmt.Println("Type your message and press Enter. Type 'exit' or press Ctrl+C to quit.")
	fmt.Println()

	var userCtx *model.UserContext
	if *email != "" {
		userCtx = &model.UserContext{
			Email:    *email,
			Name:     *name,
			UserType: *userType,
		}
	}

	client := &http.Client{Timeout: 90 * time.Second}
	history := []model.ChatMessage{}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			break
		}

		resp, err := sendChat(client, *serverURL, &model.ChatRequest{
			Message:             input,
			ConversationHistory: history,
			UserContext:         userCtx,
		})
		if err != nil {
			fmt.Printf("%s %v\n\n", color.RedString("Error:"), err)
			continue
		}

		fmt.Printf("%s %s\n", boldCyan("Assistant:"), resp.Response)
		if len(resp.Suggestions) > 0 {
			fmt.Printf("%s %s\n", yellow("Suggestions:"), strings.Join(resp.Suggestions, " | "))
		}
		fmt.Println()

		history = append(history,
			model.ChatMessage{Role: model.RoleUser, Content: input},
			model.ChatMessage{Role: model.RoleAssistant, Content: resp.Response},
		)
	}
}

func sendChat(client *http.Client, baseURL string, req *model.ChatRequest) (*model.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpResp, err := client.Post(strings.TrimSuffix(baseURL, "/")+"/api/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("server returned %d: %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("server returned %d", httpResp.StatusCode)
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &resp, nil
}
