package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
)

// mockStore records which lookup was invoked and returns canned data.
type mockStore struct {
	mu sync.Mutex

	ownerProperties []model.PropertyRecord
	favorites       []model.PropertyRecord
	bookings        []model.BookingRecord
	searchResults   []model.PropertyRecord

	lastSearchFilter *model.PropertyFilter
	loggedIntents    []string
}

func (m *mockStore) ListOwnerOrPublicProperties(ctx context.Context, email, userType string) []model.PropertyRecord {
	return m.ownerProperties
}

func (m *mockStore) ListFavorites(ctx context.Context, email string) []model.PropertyRecord {
	return m.favorites
}

func (m *mockStore) ListBookings(ctx context.Context, email string) []model.BookingRecord {
	return m.bookings
}

func (m *mockStore) Search(ctx context.Context, filter *model.PropertyFilter) []model.PropertyRecord {
	m.mu.Lock()
	m.lastSearchFilter = filter
	m.mu.Unlock()
	return m.searchResults
}

func (m *mockStore) LogChat(ctx context.Context, entry *model.ChatLog) error {
	m.mu.Lock()
	m.loggedIntents = append(m.loggedIntents, entry.Intent)
	m.mu.Unlock()
	return nil
}

func (m *mockStore) Ping(ctx context.Context) error { return nil }

func (m *mockStore) Close() error { return nil }

// mockGenerator returns a fixed completion or error.
type mockGenerator struct {
	response string
	err      error

	called     bool
	lastPrompt string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.called = true
	m.lastPrompt = prompt
	return m.response, m.err
}

func identifiedRequest(message string) *model.ChatRequest {
	return &model.ChatRequest{
		Message: message,
		UserContext: &model.UserContext{
			Email:    "alice@example.com",
			Name:     "Alice",
			UserType: "traveler",
		},
	}
}

func sampleProperty() model.PropertyRecord {
	return model.PropertyRecord{
		PropertyID:    "1",
		PropertyName:  "Canal House",
		City:          "Amsterdam",
		Country:       "Netherlands",
		PricePerNight: 180,
		Bedrooms:      2,
		Bathrooms:     1,
		PropertyType:  "house",
	}
}

func TestHandleChat_OwnerListings(t *testing.T) {
	store := &mockStore{ownerProperties: []model.PropertyRecord{sampleProperty()}}
	gen := &mockGenerator{}
	svc := NewChatService(store, gen)

	req := identifiedRequest("show my properties")
	req.UserContext.UserType = "owner"

	resp, err := svc.HandleChat(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if !strings.Contains(resp.Response, "Canal House") {
		t.Errorf("response missing property name:\n%s", resp.Response)
	}
	if gen.called {
		t.Error("owner listings branch must not call the generator")
	}
	want := []string{"Add new property", "View bookings", "Update details"}
	if !reflect.DeepEqual(resp.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", resp.Suggestions, want)
	}
}

func TestHandleChat_OwnerListingsEmpty(t *testing.T) {
	store := &mockStore{}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), identifiedRequest("my listings please"))
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if resp.Response != "You don't have any properties listed yet." {
		t.Errorf("unexpected response: %q", resp.Response)
	}
}

func TestHandleChat_Favorites(t *testing.T) {
	store := &mockStore{favorites: []model.PropertyRecord{sampleProperty()}}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), identifiedRequest("what are my favorites?"))
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if !strings.HasPrefix(resp.Response, "Here are your favorite properties:") {
		t.Errorf("response missing favorites header:\n%s", resp.Response)
	}
	if !strings.Contains(resp.Response, "Canal House") {
		t.Errorf("response missing property name:\n%s", resp.Response)
	}
}

func TestHandleChat_BookingsEmpty(t *testing.T) {
	store := &mockStore{}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), identifiedRequest("show my bookings"))
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if resp.Response != "You don't have any bookings yet." {
		t.Errorf("unexpected response: %q", resp.Response)
	}
	want := []string{"Find properties", "Popular destinations", "Help"}
	if !reflect.DeepEqual(resp.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", resp.Suggestions, want)
	}
}

func TestHandleChat_BookingsPrecedeSearch(t *testing.T) {
	// "show my bookings" also carries the search keyword "show"; the
	// bookings rule sits earlier in the decision list and must win.
	store := &mockStore{searchResults: []model.PropertyRecord{sampleProperty()}}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), identifiedRequest("show my bookings"))
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if strings.Contains(resp.Response, "Canal House") {
		t.Errorf("search branch handled a bookings message:\n%s", resp.Response)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.lastSearchFilter != nil {
		t.Error("Search was called for a bookings message")
	}
}

func TestHandleChat_IdentityFallThrough(t *testing.T) {
	// Without a caller email the bookings rule does not match and the
	// message lands in search via the "show" keyword.
	store := &mockStore{searchResults: []model.PropertyRecord{sampleProperty()}}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), &model.ChatRequest{Message: "show my bookings"})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	store.mu.Lock()
	searched := store.lastSearchFilter != nil
	store.mu.Unlock()
	if !searched {
		t.Fatal("expected the message to fall through to search")
	}
	if !strings.Contains(resp.Response, "Canal House") {
		t.Errorf("response missing search result:\n%s", resp.Response)
	}
}

func TestHandleChat_SearchWithResults(t *testing.T) {
	store := &mockStore{searchResults: []model.PropertyRecord{sampleProperty()}}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), &model.ChatRequest{
		Message: "find a 2 bedroom place in Amsterdam",
	})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if !strings.Contains(resp.Response, "I found 1 properties for you:") {
		t.Errorf("response missing results header:\n%s", resp.Response)
	}

	store.mu.Lock()
	filter := store.lastSearchFilter
	store.mu.Unlock()
	if filter == nil {
		t.Fatal("Search was not called")
	}
	if filter.Bedrooms == nil || *filter.Bedrooms != 2 {
		t.Errorf("search filter bedrooms = %v, want 2", filter.Bedrooms)
	}
	if filter.City == nil || *filter.City != "amsterdam" {
		t.Errorf("search filter city = %v, want amsterdam", filter.City)
	}
}

func TestHandleChat_SearchEmptyEchoesCriteria(t *testing.T) {
	store := &mockStore{}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), &model.ChatRequest{
		Message: "find a 2 bedroom place in Rome under $150",
	})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if !strings.Contains(resp.Response, "I couldn't find any properties 2 bedrooms, in rome, under $150.") {
		t.Errorf("response does not echo the applied filters:\n%s", resp.Response)
	}
}

func TestHandleChat_SearchEmptyWithoutFilters(t *testing.T) {
	store := &mockStore{}
	svc := NewChatService(store, &mockGenerator{})

	resp, err := svc.HandleChat(context.Background(), &model.ChatRequest{Message: "search"})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if !strings.Contains(resp.Response, "I couldn't find any properties matching your criteria.") {
		t.Errorf("unexpected empty-search response:\n%s", resp.Response)
	}
}

func TestHandleChat_GeneralFallback(t *testing.T) {
	store := &mockStore{}
	gen := &mockGenerator{response: "Pack light layers and a rain jacket."}
	svc := NewChatService(store, gen)

	resp, err := svc.HandleChat(context.Background(), &model.ChatRequest{
		Message: "what should I pack for a trip to Ireland?",
	})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if !gen.called {
		t.Fatal("generator was not called for an open-ended message")
	}
	if resp.Response != "Pack light layers and a rain jacket." {
		t.Errorf("unexpected response: %q", resp.Response)
	}
	if !strings.Contains(gen.lastPrompt, "what should I pack for a trip to Ireland?") {
		t.Errorf("prompt missing the user message:\n%s", gen.lastPrompt)
	}
}

func TestHandleChat_GeneralEmptyCompletion(t *testing.T) {
	gen := &mockGenerator{response: "   \n"}
	svc := NewChatService(&mockStore{}, gen)

	resp, err := svc.HandleChat(context.Background(), &model.ChatRequest{Message: "hmm?"})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if resp.Response != "I apologize, but I couldn't generate a response. Please try rephrasing." {
		t.Errorf("unexpected response: %q", resp.Response)
	}
}

func TestHandleChat_GeneralErrorPropagates(t *testing.T) {
	gen := &mockGenerator{err: ErrAITimeout}
	svc := NewChatService(&mockStore{}, gen)

	_, err := svc.HandleChat(context.Background(), &model.ChatRequest{Message: "hello there"})
	if !errors.Is(err, ErrAITimeout) {
		t.Errorf("HandleChat() error = %v, want ErrAITimeout", err)
	}
}
