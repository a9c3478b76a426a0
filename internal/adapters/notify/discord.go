// Package notify announces roster changes to external channels.
package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"mergington/internal/ports/output"
)

var _ output.Notifier = (*Announcer)(nil)

// Announcer posts signup announcements to a Discord channel.
type Announcer struct {
	session   *discordgo.Session
	channelID string
	log       *zap.Logger
}

// NewAnnouncer opens a Discord session for the given bot token. The caller
// must Close the Announcer on shutdown.
func NewAnnouncer(token, channelID string, log *zap.Logger) (*Announcer, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("open discord session: %w", err)
	}
	return &Announcer{
		session:   s,
		channelID: channelID,
		log:       log,
	}, nil
}

func (a *Announcer) SignedUp(ctx context.Context, activityName, email string) {
	a.post(fmt.Sprintf("📋 %s signed up for **%s**", email, activityName))
}

func (a *Announcer) Unregistered(ctx context.Context, activityName, email string) {
	a.post(fmt.Sprintf("📋 %s left **%s**", email, activityName))
}

func (a *Announcer) post(content string) {
	if _, err := a.session.ChannelMessageSend(a.channelID, content); err != nil {
		a.log.Warn("discord announcement failed", zap.Error(err))
	}
}

// Close closes the underlying Discord session.
func (a *Announcer) Close() error {
	return a.session.Close()
}
