package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/argguild/epgpbot/internal/item"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/loot"
	"github.com/argguild/epgpbot/internal/roster"
)

// Services are the application services the bot's commands call
type Services struct {
	Ledger ledger.Service
	Loot   loot.Service
	Roster roster.Service
	Items  item.Service
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
	// GuildID scopes command registration to one guild; empty registers globally
	GuildID string
}

// Bot represents the Discord bot
type Bot struct {
	Session   *discordgo.Session
	AppID     string
	GuildID   string
	Registry  *CommandRegistry
	Reactions *ReactionHandler
}

// New creates a new Discord bot with the bid reaction handler and the slash commands wired
func New(cfg Config, svc Services, registry *loot.BidTierRegistry) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions

	commands := NewCommandRegistry()
	commands.Register(PingCommand())
	commands.Register(StandingCommand(svc.Roster, svc.Ledger))
	commands.Register(PriorityCommand(svc.Roster, svc.Ledger))
	commands.Register(DropCommand(svc.Loot, svc.Items, registry))
	commands.Register(AwardCommand(svc.Loot, svc.Items))

	return &Bot{
		Session:   s,
		AppID:     cfg.AppID,
		GuildID:   cfg.GuildID,
		Registry:  commands,
		Reactions: NewReactionHandler(svc.Loot, registry),
	}, nil
}

// Start opens the gateway connection and registers the handlers
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.Reactions.OnReactionAdd)
	b.Session.AddHandler(b.Reactions.OnReactionRemove)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgOpenConnection, err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	b.Registry.Handle(ctx, s, i)
}
