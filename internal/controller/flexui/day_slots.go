package flexui

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yuchiehk/coachbot/internal/model"
)

// DaySlots is step 2: the bookable windows of one date.
func DaySlots(date string, slots []model.Slot) *linebot.BubbleContainer {
	buttons := make([]linebot.FlexComponent, 0, len(slots))
	for _, s := range slots {
		buttons = append(buttons, &linebot.ButtonComponent{
			Type:  linebot.FlexComponentTypeButton,
			Style: linebot.FlexButtonStyleTypeSecondary,
			Action: &linebot.PostbackAction{
				Label: s.StartTime + "–" + s.EndTime,
				Data:  DataSlot + s.SlotID().String(),
			},
		})
	}

	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:    linebot.FlexComponentTypeBox,
			Layout:  linebot.FlexBoxLayoutTypeVertical,
			Spacing: linebot.FlexComponentSpacingTypeMd,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "⏰ 選擇時段（2 / 3）",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  DisplayDate(date),
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#666666",
				},
				&linebot.BoxComponent{
					Type:     linebot.FlexComponentTypeBox,
					Layout:   linebot.FlexBoxLayoutTypeVertical,
					Spacing:  linebot.FlexComponentSpacingTypeSm,
					Contents: buttons,
				},
				&linebot.ButtonComponent{
					Type:  linebot.FlexComponentTypeButton,
					Style: linebot.FlexButtonStyleTypeSecondary,
					Action: &linebot.PostbackAction{
						Label: "⬅ 回選日期",
						Data:  DataBackToDates,
					},
				},
			},
		},
	}
}
