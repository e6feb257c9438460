package controller

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yuchiehk/coachbot/internal/controller/flexui"
	"github.com/yuchiehk/coachbot/internal/model"
)

// PushStudentReminder delivers the next-day class reminder to one
// student. Implements service.ReminderPusher.
func (c *BotController) PushStudentReminder(ctx context.Context, userID string, slot model.Slot) error {
	msg := linebot.NewFlexMessage("明天上課提醒", flexui.StudentReminder(slot))
	if _, err := c.client.PushMessage(userID, msg).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("push student reminder: %w", err)
	}
	return nil
}

// PushCoachSummary delivers tomorrow's booking summary to the coach.
func (c *BotController) PushCoachSummary(ctx context.Context, coachID, date string, bookings []model.Slot) error {
	msg := linebot.NewFlexMessage("明天課表提醒", flexui.CoachSummary(date, bookings))
	if _, err := c.client.PushMessage(coachID, msg).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("push coach summary: %w", err)
	}
	return nil
}
