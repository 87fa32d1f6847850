// Package notifier forwards task-update events to Telegram and e-mail.
// It is an optional downstream consumer of the update topic: delivery is
// best-effort and failures are only logged, mirroring the publisher side.
package notifier

import (
	"encoding/json"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nats-io/nats.go"
	"gopkg.in/gomail.v2"

	"tasktrack/internal/config"
	"tasktrack/internal/messaging"
	"tasktrack/internal/models"
)

// Subscriber is satisfied by messaging.Publisher (shared connection).
type Subscriber interface {
	Subscribe(topic string, handler func(data []byte)) (*nats.Subscription, error)
}

type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	dialer *gomail.Dialer
	from   string
	to     string
}

// New builds a notifier from config. Channels without credentials stay
// disabled; a nil-channel notifier is valid and simply does nothing.
func New(cfg config.NotificationsConfig) *Notifier {
	n := &Notifier{}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			log.Printf("[notify][telegram][err] init: %v", err)
		} else {
			n.bot = bot
			n.chatID = cfg.Telegram.ChatID
		}
	}

	if cfg.Email.SMTPHost != "" && cfg.Email.ToEmail != "" {
		n.dialer = gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPassword)
		n.from = cfg.Email.FromEmail
		n.to = cfg.Email.ToEmail
	}

	return n
}

func (n *Notifier) Enabled() bool {
	return n.bot != nil || n.dialer != nil
}

// Start subscribes to the task-update topic.
func (n *Notifier) Start(sub Subscriber) error {
	if !n.Enabled() {
		return nil
	}
	_, err := sub.Subscribe(messaging.TopicTaskUpdated, n.handleTaskUpdated)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", messaging.TopicTaskUpdated, err)
	}
	log.Printf("[notify] subscribed to %s", messaging.TopicTaskUpdated)
	return nil
}

func (n *Notifier) handleTaskUpdated(data []byte) {
	var event models.TaskUpdatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		log.Printf("[notify][err] decode event: %v", err)
		return
	}
	if event.Data == nil {
		log.Printf("[notify][skip] event without task payload")
		return
	}

	text := fmt.Sprintf("Task %q is now %s (updated by %s)",
		event.Data.Name, event.Data.Status, event.UserID)

	n.sendTelegram(text)
	n.sendEmail(event)
}

func (n *Notifier) sendTelegram(text string) {
	if n.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[notify][telegram][err] send: %v", err)
	}
}

func (n *Notifier) sendEmail(event models.TaskUpdatedEvent) {
	if n.dialer == nil {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("Task updated: %s", event.Data.Name))

	body := fmt.Sprintf(`
		<h3>%s</h3>
		<p>Status: <strong>%s</strong></p>
		<p>Description: %s</p>
		<p>Updated by: %s</p>
	`, event.Data.Name, event.Data.Status, event.Data.Description, event.UserID)

	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Printf("[notify][email][err] send: %v", err)
	}
}
