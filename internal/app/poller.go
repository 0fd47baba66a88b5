// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/homework"
	"homework_notification_bot/internal/domain/practicum"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Poller runs the poll-validate-notify cycle against the homework review API.
// It owns the from_date cursor and the last-notified error; both are touched
// only from PollOnce, which is never invoked concurrently.
type Poller struct {
	apiClient      practicum.Client
	telegramClient domainTelegram.Client
	chatID         int64
	logger         *logrus.Logger

	cursor          int64
	lastNotifiedErr error
}

func NewPoller(
	apiClient practicum.Client,
	telegramClient domainTelegram.Client,
	chatID int64,
	logger *logrus.Logger,
) *Poller {
	return &Poller{
		apiClient:      apiClient,
		telegramClient: telegramClient,
		chatID:         chatID,
		logger:         logger,
		cursor:         time.Now().Unix(),
	}
}

// Cursor returns the current from_date cursor (Unix seconds).
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// PollOnce executes a single cycle: fetch changes since the cursor, extract
// the latest record, and notify on a status change. Every failure along the
// way is folded into one caught error and fed to the suppression policy; no
// failure terminates the caller. The cursor advances to the server-reported
// current_date whenever a response was decoded, so a failed cycle re-queries
// the same window next tick.
func (p *Poller) PollOnce(ctx context.Context) {
	resp, cycleErr := p.apiClient.HomeworkStatuses(ctx, p.cursor)
	if cycleErr == nil {
		cycleErr = p.handleResponse(resp)
	}

	if cycleErr != nil {
		p.reportError(cycleErr)
	} else {
		p.logger.Debugf("Poll cycle completed, cursor=%d", p.cursor)
	}

	if resp != nil && resp.CurrentDate > 0 {
		p.cursor = resp.CurrentDate
	}
}

func (p *Poller) handleResponse(resp *homework.StatusesResponse) error {
	hw, err := homework.LatestHomework(resp)
	if err != nil {
		return err
	}
	if hw == nil {
		p.logger.Info("No new homework statuses this cycle.")
		return nil
	}

	msg, err := homework.FormatStatusMessage(hw)
	if err != nil {
		return err
	}
	return p.notify(msg)
}

func (p *Poller) notify(text string) error {
	if err := p.telegramClient.SendMessage(p.chatID, text, nil); err != nil {
		p.logger.Errorf("Failed to send Telegram message: %v", err)
		return err
	}
	p.logger.Debugf("Telegram message sent: %s", text)
	return nil
}

// reportError applies the duplicate-suppression policy: a genuinely new error
// (different rendered content than the last announced one) is relayed to the
// chat once; an identical repeat is logged only. Delivery failures are never
// answered with another send attempt, so a Telegram outage cannot loop.
func (p *Poller) reportError(err error) {
	p.logger.Errorf("Poll cycle failed: %v", err)

	if p.lastNotifiedErr != nil && p.lastNotifiedErr.Error() == err.Error() {
		p.logger.Debug("Identical error repeated, notification suppressed.")
		return
	}
	p.lastNotifiedErr = err

	if errors.Is(err, domainTelegram.ErrDeliveryFailed) {
		return
	}
	if sendErr := p.notify(fmt.Sprintf("Сбой в работе программы: %v", err)); sendErr != nil {
		p.logger.Errorf("Could not deliver failure notice: %v", sendErr)
	}
}
