package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/loot"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord API requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// discordRecorder captures the requests a session sends to Discord
type discordRecorder struct {
	mu        sync.Mutex
	responses []discordgo.InteractionResponse
	messages  []string
	reactions []string
}

func (r *discordRecorder) lastResponse(t *testing.T) discordgo.InteractionResponse {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.responses, "no interaction response was sent")
	return r.responses[len(r.responses)-1]
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// newTestSession returns a session whose Discord API calls are answered locally
func newTestSession(t *testing.T) (*discordgo.Session, *discordRecorder) {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	rec := &discordRecorder{}
	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			switch {
			case strings.HasSuffix(req.URL.Path, "/callback"):
				var resp discordgo.InteractionResponse
				_ = json.NewDecoder(req.Body).Decode(&resp)
				rec.responses = append(rec.responses, resp)
			case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/messages"):
				var msg discordgo.MessageSend
				_ = json.NewDecoder(req.Body).Decode(&msg)
				rec.messages = append(rec.messages, msg.Content)
				return jsonResponse(`{"id":"msg-1","channel_id":"chan-1"}`), nil
			case req.Method == http.MethodPut && strings.Contains(req.URL.Path, "/reactions/"):
				rec.reactions = append(rec.reactions, req.URL.Path)
			}
			return jsonResponse("{}"), nil
		},
	}}
	return session, rec
}

func newTestRegistry(t *testing.T) *loot.BidTierRegistry {
	t.Helper()
	registry, err := loot.NewBidTierRegistry(map[domain.BidTier]string{
		domain.BidTierUpgrade:   "bid_100",
		domain.BidTierSidegrade: "bid_25",
		domain.BidTierOffspec:   "bid_0",
	})
	require.NoError(t, err)
	return registry
}

// commandInteraction builds a slash command interaction invoked by user
func commandInteraction(name, user string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			Token:     "token-1",
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: "chan-1",
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: user, Username: "Tester"},
			},
		},
	}
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

// intOpt uses float64 the way option values arrive from JSON
func intOpt(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func userOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: id}
}
