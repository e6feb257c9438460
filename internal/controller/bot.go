package controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/controller/flexui"
	"github.com/yuchiehk/coachbot/internal/model"
	"github.com/yuchiehk/coachbot/internal/service"
)

const defaultReportDays = 14

// BotController is the LINE transport adapter: it verifies and parses
// webhook requests, normalizes messages and postbacks into engine
// actions, and renders the tagged results back into LINE messages.
type BotController struct {
	client   *linebot.Client
	booking  *service.BookingService
	coach    *service.CoachService
	coachIDs map[string]struct{}
	logger   *zap.Logger
}

func NewBotController(
	client *linebot.Client,
	booking *service.BookingService,
	coach *service.CoachService,
	coachIDs []string,
	logger *zap.Logger,
) *BotController {
	ids := make(map[string]struct{}, len(coachIDs))
	for _, id := range coachIDs {
		ids[id] = struct{}{}
	}

	return &BotController{
		client:   client,
		booking:  booking,
		coach:    coach,
		coachIDs: ids,
		logger:   logger,
	}
}

// Register mounts the webhook and health endpoints.
func (c *BotController) Register(mux *http.ServeMux) {
	mux.HandleFunc("/webhook", c.handleWebhook)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/", handleHealth)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (c *BotController) handleWebhook(w http.ResponseWriter, r *http.Request) {
	events, err := c.client.ParseRequest(r)
	if err != nil {
		if err == linebot.ErrInvalidSignature {
			c.logger.Warn("webhook with invalid signature")
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}
		c.logger.Error("failed to parse webhook", zap.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	logger := c.logger.With(zap.String("request_id", uuid.NewString()))

	for _, event := range events {
		if event.Source == nil || event.Source.UserID == "" {
			continue
		}
		userID := event.Source.UserID

		switch event.Type {
		case linebot.EventTypeMessage:
			if msg, ok := event.Message.(*linebot.TextMessage); ok {
				c.handleText(ctx, logger, event.ReplyToken, userID, msg.Text)
			}
		case linebot.EventTypePostback:
			c.handlePostback(ctx, logger, event.ReplyToken, userID, event.Postback.Data)
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (c *BotController) handleText(ctx context.Context, logger *zap.Logger, replyToken, userID, text string) {
	text = strings.TrimSpace(text)

	logger.Info("inbound message",
		zap.String("user_id", userID),
		zap.String("text", text))

	if c.isCoach(userID) {
		if handled := c.handleCoachCommand(ctx, logger, replyToken, text); handled {
			return
		}
	}

	switch text {
	case "預約":
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.Dates(ctx)
		})
	case "取消":
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.Bookings(ctx, userID)
		})
	default:
		c.replyMenu(ctx, logger, replyToken)
	}
}

// handleCoachCommand dispatches the operator text commands. Returns
// false for anything that should fall through to the student commands.
func (c *BotController) handleCoachCommand(ctx context.Context, logger *zap.Logger, replyToken, text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "查課":
		if len(fields) != 2 {
			c.replyText(ctx, logger, replyToken, "用法：查課 YYYY-MM-DD")
			return true
		}
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.coach.Day(ctx, fields[1])
		})
		return true

	case "課表":
		days := defaultReportDays
		if len(fields) == 2 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				c.replyText(ctx, logger, replyToken, "用法：課表 或 課表 14")
				return true
			}
			days = n
		}
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.coach.Report(ctx, today(), days)
		})
		return true

	case "鎖定":
		if len(fields) != 2 {
			c.replyText(ctx, logger, replyToken, "用法：鎖定 YYYY-MM-DDTHH:MM-HH:MM")
			return true
		}
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.coach.Lock(ctx, fields[1])
		})
		return true

	case "解鎖":
		if len(fields) != 2 {
			c.replyText(ctx, logger, replyToken, "用法：解鎖 YYYY-MM-DDTHH:MM-HH:MM")
			return true
		}
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.coach.Unlock(ctx, fields[1])
		})
		return true

	case "開放", "關閉":
		if len(fields) < 2 {
			c.replyText(ctx, logger, replyToken, "用法："+fields[0]+" YYYY-MM-DD [原因]")
			return true
		}
		status := model.OverrideStatusOpen
		if fields[0] == "關閉" {
			status = model.OverrideStatusClosed
		}
		reason := strings.Join(fields[2:], " ")
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.coach.SetOverride(ctx, fields[1], status, reason)
		})
		return true
	}

	return false
}

func (c *BotController) handlePostback(ctx context.Context, logger *zap.Logger, replyToken, userID, data string) {
	logger.Info("inbound postback",
		zap.String("user_id", userID),
		zap.String("data", data))

	switch {
	case data == flexui.DataBackToDates:
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.Dates(ctx)
		})

	case strings.HasPrefix(data, flexui.DataDate):
		date := strings.TrimPrefix(data, flexui.DataDate)
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.DaySlots(ctx, date)
		})

	case strings.HasPrefix(data, flexui.DataSlot):
		slotID := strings.TrimPrefix(data, flexui.DataSlot)
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.SelectSlot(ctx, userID, slotID)
		})

	case strings.HasPrefix(data, flexui.DataConfirm):
		slotID := strings.TrimPrefix(data, flexui.DataConfirm)
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.Confirm(ctx, userID, slotID)
		})

	case strings.HasPrefix(data, flexui.DataCancelTarget):
		slotID := strings.TrimPrefix(data, flexui.DataCancelTarget)
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.SelectCancelTarget(ctx, userID, slotID)
		})

	case strings.HasPrefix(data, flexui.DataCancelConfirm):
		slotID := strings.TrimPrefix(data, flexui.DataCancelConfirm)
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.booking.ConfirmCancel(ctx, userID, slotID)
		})

	case strings.HasPrefix(data, flexui.DataCoachDay):
		if !c.isCoach(userID) {
			c.replyMenu(ctx, logger, replyToken)
			return
		}
		date := strings.TrimPrefix(data, flexui.DataCoachDay)
		c.respond(ctx, logger, replyToken, func() (service.Result, error) {
			return c.coach.Day(ctx, date)
		})

	default:
		logger.Warn("unknown postback", zap.String("data", data))
	}
}

// respond runs one engine action and replies with the rendered result.
// A store failure becomes a generic apology; the slot table is
// guaranteed untouched by the failed request.
func (c *BotController) respond(ctx context.Context, logger *zap.Logger, replyToken string, action func() (service.Result, error)) {
	res, err := action()
	if err != nil {
		logger.Error("engine action failed", zap.Error(err))
		c.replyText(ctx, logger, replyToken, "系統忙碌中，請稍後再試 🙏")
		return
	}

	c.reply(ctx, logger, replyToken, c.render(res)...)
}

func (c *BotController) isCoach(userID string) bool {
	_, ok := c.coachIDs[userID]
	return ok
}
