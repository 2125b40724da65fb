// Package notify pushes staff-facing alerts to a Telegram chat: new
// high-priority complaints and fresh announcements. Delivery is best
// effort; a failed send is logged and never surfaced to the user action
// that triggered it.
package notify

import (
	"fmt"
	"log"
	"strconv"

	"voicebox/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier is what the services call. The zero-configured Noop variant
// keeps call sites unconditional.
type Notifier interface {
	ComplaintFiled(complaint *models.Complaint)
	AnnouncementPosted(announcement *models.Announcement)
}

// Noop drops every notification. Used when no bot token is configured.
type Noop struct{}

func (Noop) ComplaintFiled(*models.Complaint)        {}
func (Noop) AnnouncementPosted(*models.Announcement) {}

// TelegramNotifier sends alerts to one staff chat.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramNotifier connects the bot. token and chatID come from
// configuration; chatID is the numeric id of the staff group.
func NewTelegramNotifier(token, chatID string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid telegram chat id %q: %v", chatID, err)
	}
	log.Printf("INFO: Telegram notifier authorized as %s", bot.Self.UserName)
	return &TelegramNotifier{BotAPI: bot, ChatID: id}, nil
}

// ComplaintFiled alerts staff about a new complaint. Only High priority
// complaints are pushed; the rest reach admins through the dashboard.
// The author name used is the stored one, so anonymity carries through.
func (n *TelegramNotifier) ComplaintFiled(complaint *models.Complaint) {
	if complaint.Priority != "High" {
		return
	}
	text := fmt.Sprintf("🚨 *High priority complaint*\n*%s* (%s)\nFiled by: %s",
		complaint.Title, complaint.Category, complaint.AuthorName)
	n.send(text)
}

// AnnouncementPosted mirrors a fresh announcement into the staff chat.
func (n *TelegramNotifier) AnnouncementPosted(announcement *models.Announcement) {
	icon := "📢"
	if announcement.Priority == models.AnnouncementHigh {
		icon = "❗"
	}
	n.send(fmt.Sprintf("%s *%s*\n%s", icon, announcement.Title, announcement.Message))
}

func (n *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(n.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Telegram notification failed: %v", err)
	}
}
