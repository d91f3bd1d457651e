package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
)

const systemPromptTemplate = `You are a friendly AI travel assistant for a vacation rental platform.

Your role:
- Help users search for vacation rental properties
- Answer questions about bookings and amenities
- Provide travel recommendations

Be helpful, concise, and professional.

Current date: %s
`

// historyTurns caps how much conversation history enters the prompt
const historyTurns = 3

// BuildPrompt assembles the generation prompt: system instructions with the
// current date, an optional caller identity line, the last few history
// turns, and the new message.
func BuildPrompt(message string, history []model.ChatMessage, user *model.UserContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, systemPromptTemplate, time.Now().Format("2006-01-02"))

	if user != nil {
		name := user.Name
		if name == "" {
			name = "Guest"
		}
		fmt.Fprintf(&b, "\nUser: %s", name)
		if user.UserType != "" {
			fmt.Fprintf(&b, " (%s)", user.UserType)
		}
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("\nRecent conversation:\n")
		start := len(history) - historyTurns
		if start < 0 {
			start = 0
		}
		for _, msg := range history[start:] {
			fmt.Fprintf(&b, "%s: %s\n", capitalize(msg.Role), msg.Content)
		}
	}

	fmt.Fprintf(&b, "\nUser: %s\nAssistant:", message)
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
