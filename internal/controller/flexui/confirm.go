package flexui

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yuchiehk/coachbot/internal/model"
)

// Confirm is step 3: the final confirmation card for a picked slot.
func Confirm(id model.SlotID) *linebot.BubbleContainer {
	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:    linebot.FlexComponentTypeBox,
			Layout:  linebot.FlexBoxLayoutTypeVertical,
			Spacing: linebot.FlexComponentSpacingTypeMd,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "請確認你的預約（3 / 3）",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   DisplayDate(id.Date) + " " + id.Start + "–" + id.End,
					Margin: linebot.FlexComponentMarginTypeMd,
				},
				&linebot.ButtonComponent{
					Type:  linebot.FlexComponentTypeButton,
					Style: linebot.FlexButtonStyleTypePrimary,
					Action: &linebot.PostbackAction{
						Label: "✅ 確認預約",
						Data:  DataConfirm + id.String(),
					},
				},
			},
		},
	}
}
