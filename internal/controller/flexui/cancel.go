package flexui

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yuchiehk/coachbot/internal/model"
)

// CancelList shows the user's current bookings, one button each.
func CancelList(bookings []model.Slot) *linebot.BubbleContainer {
	buttons := make([]linebot.FlexComponent, 0, len(bookings))
	for _, s := range bookings {
		buttons = append(buttons, &linebot.ButtonComponent{
			Type:  linebot.FlexComponentTypeButton,
			Style: linebot.FlexButtonStyleTypeSecondary,
			Action: &linebot.PostbackAction{
				Label: DisplayDate(s.Date) + " " + s.StartTime + "–" + s.EndTime,
				Data:  DataCancelTarget + s.SlotID().String(),
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
					Text:   "❌ 選擇要取消的預約",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
				},
				&linebot.BoxComponent{
					Type:     linebot.FlexComponentTypeBox,
					Layout:   linebot.FlexBoxLayoutTypeVertical,
					Spacing:  linebot.FlexComponentSpacingTypeSm,
					Contents: buttons,
				},
			},
		},
	}
}

// CancelConfirm asks for the final confirmation before releasing a
// booking.
func CancelConfirm(id model.SlotID) *linebot.BubbleContainer {
	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "確認取消預約",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   DisplayDate(id.Date) + " " + id.Start + "–" + id.End,
					Margin: linebot.FlexComponentMarginTypeMd,
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
					Style: linebot.FlexButtonStyleTypePrimary,
					Action: &linebot.PostbackAction{
						Label: "確認取消",
						Data:  DataCancelConfirm + id.String(),
					},
				},
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Style:  linebot.FlexButtonStyleTypeSecondary,
					Action: linebot.NewMessageAction("不取消", "不取消"),
				},
			},
		},
	}
}
