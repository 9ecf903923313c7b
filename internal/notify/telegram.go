// Package notify delivers fire-and-forget Telegram messages about
// bookings and ledger changes. Delivery failures are logged and
// dropped; notifications never affect the transaction that produced
// them.
package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"repairbook/internal/domain/referral"
	"repairbook/internal/pkg/config"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/ledger"
)

type TelegramNotifier struct {
	bot        *tgbotapi.BotAPI
	adminChats []int64
}

// New builds the Telegram notifier, or a no-op one when no bot token is
// configured.
func New(cfg config.TelegramConfig) (commands.Notifier, error) {
	if cfg.BotToken == "" {
		slog.Info("telegram notifications disabled, no bot token configured")
		return NopNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	slog.Info("telegram notifications enabled", "bot", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, adminChats: cfg.AdminChatIDs}, nil
}

func (n *TelegramNotifier) AppointmentCreated(info commands.AppointmentNotice) {
	text := fmt.Sprintf(
		"New appointment\n%s / %s\n%s — %s\n%s, %s\nPrice: %s",
		info.DeviceModelSlug, info.RepairTypeSlug,
		info.StartAt.Format("2006-01-02 15:04"), info.EndAt.Format("15:04"),
		info.CustomerName, info.CustomerPhone,
		referral.FormatCents(info.PriceFinalCents),
	)
	if info.DiscountCents > 0 {
		text += fmt.Sprintf(" (discount %s)", referral.FormatCents(info.DiscountCents))
	}
	if info.ReferralCode != "" {
		text += "\nReferral code: " + info.ReferralCode
	}
	n.broadcast(text)
}

func (n *TelegramNotifier) AppointmentStatusChanged(info commands.AppointmentNotice, oldStatus, newStatus string) {
	n.broadcast(fmt.Sprintf(
		"Appointment %s: %s -> %s\n%s, %s",
		info.ID, oldStatus, newStatus,
		info.CustomerName, info.StartAt.Format("2006-01-02 15:04"),
	))
}

func (n *TelegramNotifier) LedgerEvents(events []ledger.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case ledger.EventRedemptionCreated:
			n.notifyPartner(ev.Partner, fmt.Sprintf(
				"Your code was used. Commission %s is pending until the repair completes.",
				referral.FormatCents(ev.Redemption.CommissionCents()),
			))
		case ledger.EventCreditConsumed:
			n.notifyPartner(ev.Partner, fmt.Sprintf(
				"Credit of %s was applied to your booking.",
				referral.FormatCents(ev.Redemption.DiscountCents()),
			))
		case ledger.EventRedemptionPaid:
			n.broadcast(fmt.Sprintf(
				"Commission %s paid out (redemption %s).",
				referral.FormatCents(ev.Redemption.CommissionCents()), ev.Redemption.ID(),
			))
		}
	}
}

func (n *TelegramNotifier) notifyPartner(partner *referral.Partner, text string) {
	if partner == nil || partner.TelegramChatID() == nil {
		return
	}
	n.send(*partner.TelegramChatID(), text)
}

func (n *TelegramNotifier) broadcast(text string) {
	for _, chatID := range n.adminChats {
		n.send(chatID, text)
	}
}

func (n *TelegramNotifier) send(chatID int64, text string) {
	go func() {
		if _, err := n.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			slog.Warn("failed to send telegram notification", "chat_id", chatID, "error", err.Error())
		}
	}()
}

// NopNotifier swallows everything; used when Telegram is not configured
// and in tests.
type NopNotifier struct{}

func (NopNotifier) AppointmentCreated(commands.AppointmentNotice) {}

func (NopNotifier) AppointmentStatusChanged(commands.AppointmentNotice, string, string) {}

func (NopNotifier) LedgerEvents([]ledger.Event) {}
