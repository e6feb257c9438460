package flexui

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yuchiehk/coachbot/internal/model"
)

// StudentReminder is the evening push for a student with a class
// tomorrow. The cancel button feeds straight into the cancel flow.
func StudentReminder(slot model.Slot) *linebot.BubbleContainer {
	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:    linebot.FlexComponentTypeBox,
			Layout:  linebot.FlexBoxLayoutTypeVertical,
			Spacing: linebot.FlexComponentSpacingTypeMd,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "👋 明天上課提醒",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
				},
				&linebot.TextComponent{
					Type: linebot.FlexComponentTypeText,
					Text: "📅 " + DisplayDate(slot.Date) + "\n⏰ " + slot.StartTime + "–" + slot.EndTime,
					Wrap: true,
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  "需要調整嗎？",
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#666666",
				},
			},
		},
		Footer: &linebot.BoxComponent{
			Type:    linebot.FlexComponentTypeBox,
			Layout:  linebot.FlexBoxLayoutTypeVertical,
			Spacing: linebot.FlexComponentSpacingTypeSm,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:  linebot.FlexComponentTypeButton,
					Style: linebot.FlexButtonStyleTypeSecondary,
					Action: &linebot.PostbackAction{
						Label: "❌ 取消預約",
						Data:  DataCancelTarget + slot.SlotID().String(),
					},
				},
			},
		},
	}
}
