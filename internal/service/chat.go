package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/repository"

	"github.com/google/uuid"
)

// ChatService routes each inbound message through an ordered intent decision
// list. The first matching rule handles the message; open-ended questions
// fall through to AI generation.
type ChatService struct {
	store     repository.PropertyStore
	generator Generator
}

// NewChatService creates a new chat service
func NewChatService(store repository.PropertyStore, generator Generator) *ChatService {
	return &ChatService{
		store:     store,
		generator: generator,
	}
}

// intentRule is one entry in the decision list. matches reports whether the
// rule applies to the message; handle produces the response and the number
// of records it surfaced.
type intentRule struct {
	name    string
	matches func(lower string, req *model.ChatRequest) bool
	handle  func(ctx context.Context, s *ChatService, req *model.ChatRequest) (*model.ChatResponse, int)
}

// intentRules is evaluated in order; the first match wins and later rules
// are never considered. The identity-requiring rules bake the identity check
// into their predicate, so a keyword hit without a caller email falls
// through to the next rule instead of failing.
var intentRules = []intentRule{
	{
		name: "owner_listings",
		matches: func(lower string, req *model.ChatRequest) bool {
			return containsAny(lower, "my propert", "my listing") && hasIdentity(req)
		},
		handle: handleOwnerListings,
	},
	{
		name: "favorites",
		matches: func(lower string, req *model.ChatRequest) bool {
			return containsAny(lower, "favorite", "favourite", "fav", "liked") && hasIdentity(req)
		},
		handle: handleFavorites,
	},
	{
		name: "bookings",
		matches: func(lower string, req *model.ChatRequest) bool {
			return containsAny(lower, "my booking", "my reservation", "my trip", "show booking") && hasIdentity(req)
		},
		handle: handleBookings,
	},
	{
		name: "search",
		matches: func(lower string, req *model.ChatRequest) bool {
			return containsAny(lower, "find", "search", "show", "properties", "property", "hotel", "accommodation")
		},
		handle: handleSearch,
	},
}

// HandleChat processes one chat turn and returns the assistant's response.
// Only the generation path can fail; data-lookup branches degrade to "no
// results" messaging on store failure.
func (s *ChatService) HandleChat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	start := time.Now()
	lower := strings.ToLower(req.Message)

	for _, rule := range intentRules {
		if !rule.matches(lower, req) {
			continue
		}
		resp, resultCount := rule.handle(ctx, s, req)
		s.logChat(req.Message, rule.name, resultCount, time.Since(start))
		return resp, nil
	}

	resp, err := s.handleGeneral(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logChat(req.Message, "general", 0, time.Since(start))
	return resp, nil
}

func handleOwnerListings(ctx context.Context, s *ChatService, req *model.ChatRequest) (*model.ChatResponse, int) {
	user := req.UserContext
	properties := s.store.ListOwnerOrPublicProperties(ctx, user.Email, user.UserType)

	if len(properties) == 0 {
		return &model.ChatResponse{
			Response:    "You don't have any properties listed yet.",
			Suggestions: []string{"Add a property", "Get started guide", "Help"},
		}, 0
	}

	return &model.ChatResponse{
		Response:    FormatProperties(properties),
		Suggestions: []string{"Add new property", "View bookings", "Update details"},
	}, len(properties)
}

func handleFavorites(ctx context.Context, s *ChatService, req *model.ChatRequest) (*model.ChatResponse, int) {
	properties := s.store.ListFavorites(ctx, req.UserContext.Email)

	if len(properties) == 0 {
		return &model.ChatResponse{
			Response:    "You haven't added any properties to your favorites yet.",
			Suggestions: []string{"Browse properties", "Popular destinations", "Help me search"},
		}, 0
	}

	return &model.ChatResponse{
		Response:    "Here are your favorite properties:\n\n" + FormatProperties(properties),
		Suggestions: []string{"View details", "Remove favorite", "Book now"},
	}, len(properties)
}

func handleBookings(ctx context.Context, s *ChatService, req *model.ChatRequest) (*model.ChatResponse, int) {
	bookings := s.store.ListBookings(ctx, req.UserContext.Email)

	suggestions := []string{"Cancel booking", "Modify dates", "Contact host"}
	if len(bookings) == 0 {
		suggestions = []string{"Find properties", "Popular destinations", "Help"}
	}

	return &model.ChatResponse{
		Response:    FormatBookings(bookings),
		Suggestions: suggestions,
	}, len(bookings)
}

func handleSearch(ctx context.Context, s *ChatService, req *model.ChatRequest) (*model.ChatResponse, int) {
	filter := ExtractFilter(req.Message)
	properties := s.store.Search(ctx, &filter)

	response := ""
	if len(properties) > 0 {
		response = FormatProperties(properties)
	} else {
		response = noMatchMessage(&filter)
	}

	return &model.ChatResponse{
		Response:    response,
		Suggestions: Suggest(req.Message, len(properties) > 0),
	}, len(properties)
}

// noMatchMessage echoes which filters were applied so the user can adjust
// them
func noMatchMessage(filter *model.PropertyFilter) string {
	if filter.IsEmpty() {
		return fmt.Sprintf(noMatchTemplate, "matching your criteria")
	}

	criteria := []string{}
	if filter.Bedrooms != nil {
		criteria = append(criteria, fmt.Sprintf("%d bedrooms", *filter.Bedrooms))
	}
	if filter.Bathrooms != nil {
		criteria = append(criteria, fmt.Sprintf("%d bathrooms", *filter.Bathrooms))
	}
	if filter.City != nil {
		criteria = append(criteria, "in "+*filter.City)
	}
	if filter.MaxPrice != nil {
		criteria = append(criteria, "under $"+formatPrice(*filter.MaxPrice))
	}
	if filter.Amenity != nil {
		criteria = append(criteria, "with "+*filter.Amenity)
	}

	return fmt.Sprintf(noMatchTemplate, strings.Join(criteria, ", "))
}

const noMatchTemplate = "I couldn't find any properties %s.\n\nTry:\n• Adjusting your filters\n• Searching in a different city\n• Increasing your budget"

// handleGeneral answers open-ended questions via the text-generation port
func (s *ChatService) handleGeneral(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	prompt := BuildPrompt(req.Message, req.ConversationHistory, req.UserContext)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = "I apologize, but I couldn't generate a response. Please try rephrasing."
	}

	return &model.ChatResponse{
		Response:    text,
		Suggestions: Suggest(req.Message, false),
	}, nil
}

// logChat records the handled turn without blocking the response
func (s *ChatService) logChat(message, intent string, resultCount int, took time.Duration) {
	entry := &model.ChatLog{
		ID:             uuid.NewString(),
		Message:        message,
		Intent:         intent,
		ResultCount:    resultCount,
		ResponseTimeMs: took.Milliseconds(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.LogChat(ctx, entry); err != nil {
			log.Printf("chat log failed: %v", err)
		}
	}()
}

func hasIdentity(req *model.ChatRequest) bool {
	return req.UserContext != nil && req.UserContext.Email != ""
}

func containsAny(lower string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
