package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/controller/flexui"
	"github.com/yuchiehk/coachbot/internal/model"
	"github.com/yuchiehk/coachbot/internal/service"
)

func today() string {
	return time.Now().Format(model.DateLayout)
}

// render maps each outcome to its single message template.
func (c *BotController) render(res service.Result) []linebot.SendingMessage {
	switch res.Outcome {
	case service.OutcomeDatesList:
		return []linebot.SendingMessage{
			linebot.NewFlexMessage("請選擇日期", flexui.DatePicker(res.Dates)),
		}
	case service.OutcomeNoDates:
		return textMessage("目前沒有可預約的日期 😢")

	case service.OutcomeDaySlots:
		return []linebot.SendingMessage{
			linebot.NewFlexMessage(res.Date+" 可預約時段", flexui.DaySlots(res.Date, res.Slots)),
		}
	case service.OutcomeNoSlots:
		return textMessage(res.Date + " 沒有可預約的時段")

	case service.OutcomeConfirmPrompt:
		return []linebot.SendingMessage{
			linebot.NewFlexMessage("確認預約", flexui.Confirm(res.Slot)),
		}
	case service.OutcomeBookingConfirmed:
		return textMessage(fmt.Sprintf("✅ 預約成功！\n%s %s–%s",
			flexui.DisplayDate(res.Slot.Date), res.Slot.Start, res.Slot.End))
	case service.OutcomeSlotTaken:
		return textMessage("❌ 此時段已被其他人預約")
	case service.OutcomeExpiredSelection:
		return textMessage("⚠️ 此預約已過期，請重新選擇")
	case service.OutcomeInvalidSlot:
		return textMessage("❌ 時段資料錯誤")

	case service.OutcomeBookingsList:
		return []linebot.SendingMessage{
			linebot.NewFlexMessage("取消預約", flexui.CancelList(res.Slots)),
		}
	case service.OutcomeNoBookings:
		return textMessage("你目前沒有已預約的課程")
	case service.OutcomeCancelPrompt:
		return []linebot.SendingMessage{
			linebot.NewFlexMessage("確認取消", flexui.CancelConfirm(res.Slot)),
		}
	case service.OutcomeCancelConfirmed:
		return textMessage("❌ 已成功取消預約")
	case service.OutcomeCancelFailed:
		return textMessage("取消失敗：此預約不存在或已被取消")

	case service.OutcomeCoachDay:
		return []linebot.SendingMessage{
			linebot.NewFlexMessage(res.Date+" 課表", flexui.CoachDay(res.Date, res.Slots)),
		}
	case service.OutcomeCoachDayEmpty:
		return textMessage(res.Date + " 沒有任何課程")
	case service.OutcomeCoachReport:
		return textMessage(renderReport(res.Days))

	case service.OutcomeLockConfirmed:
		return textMessage("🔒 已鎖定 " + res.Slot.String())
	case service.OutcomeUnlockConfirmed:
		return textMessage("🔓 已解鎖 " + res.Slot.String())
	case service.OutcomeSlotNotFound:
		return textMessage("找不到該時段")
	case service.OutcomeOverrideSaved:
		return textMessage("✅ 已更新 " + res.Date + " 的開放狀態")
	}

	return textMessage("請選擇功能 👇")
}

// renderReport formats the open/closed range report the way the coach
// reads it: one line per day, an icon per deciding rule.
func renderReport(days []model.DayStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 未來 %d 天課表狀態\n", len(days))

	for _, day := range days {
		d, err := time.Parse(model.DateLayout, day.Date)
		if err != nil {
			continue
		}

		icon := "❌"
		switch {
		case day.Status == model.OverrideStatusOpen && day.Source == model.DaySourceOverride:
			icon = "🔓"
		case day.Status == model.OverrideStatusOpen:
			icon = "✅"
		}

		fmt.Fprintf(&b, "\n%02d/%02d（%s） %s",
			int(d.Month()), d.Day(), flexui.WeekdayName(d), icon)
	}

	return b.String()
}

func textMessage(text string) []linebot.SendingMessage {
	return []linebot.SendingMessage{linebot.NewTextMessage(text)}
}

func (c *BotController) reply(ctx context.Context, logger *zap.Logger, replyToken string, messages ...linebot.SendingMessage) {
	if _, err := c.client.ReplyMessage(replyToken, messages...).WithContext(ctx).Do(); err != nil {
		logger.Error("failed to reply", zap.Error(err))
	}
}

func (c *BotController) replyText(ctx context.Context, logger *zap.Logger, replyToken, text string) {
	c.reply(ctx, logger, replyToken, linebot.NewTextMessage(text))
}

// replyMenu is the fallback for anything the bot does not understand.
func (c *BotController) replyMenu(ctx context.Context, logger *zap.Logger, replyToken string) {
	menu := linebot.NewTextMessage("請選擇功能 👇").WithQuickReplies(linebot.NewQuickReplyItems(
		linebot.NewQuickReplyButton("", linebot.NewMessageAction("📅 預約", "預約")),
		linebot.NewQuickReplyButton("", linebot.NewMessageAction("❌ 取消", "取消")),
	))
	c.reply(ctx, logger, replyToken, menu)
}
