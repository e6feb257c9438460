package flexui

import "github.com/line/line-bot-sdk-go/v7/linebot"

// DatePicker is step 1 of the booking flow: one button per open date.
func DatePicker(dates []string) *linebot.BubbleContainer {
	buttons := make([]linebot.FlexComponent, 0, len(dates))
	for _, d := range dates {
		buttons = append(buttons, &linebot.ButtonComponent{
			Type:  linebot.FlexComponentTypeButton,
			Style: linebot.FlexButtonStyleTypeSecondary,
			Action: &linebot.PostbackAction{
				Label: DisplayDate(d),
				Data:  DataDate + d,
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
					Text:   "📅 請選擇日期（1 / 3）",
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
