package flexui

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yuchiehk/coachbot/internal/model"
)

const (
	colorBooked    = "#E53935"
	colorBlocked   = "#FB8C00"
	colorAvailable = "#43A047"
	colorMuted     = "#999999"
)

// CoachDay is the operator view of one date: every slot with its raw
// state, including the booking owner.
func CoachDay(date string, slots []model.Slot) *linebot.BubbleContainer {
	contents := []linebot.FlexComponent{
		&linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   "📅 " + DisplayDate(date) + " 課表",
			Weight: linebot.FlexTextWeightTypeBold,
		},
	}

	for _, s := range slots {
		var label, color string
		switch s.Status {
		case model.SlotStatusBooked:
			label = s.StartTime + "-" + s.EndTime + " 已預約"
			color = colorBooked
		case model.SlotStatusBlocked:
			label = s.StartTime + "-" + s.EndTime + " 固定課"
			color = colorBlocked
		default:
			label = s.StartTime + "-" + s.EndTime + " 空堂"
			color = colorAvailable
		}

		row := []linebot.FlexComponent{
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  label,
				Color: color,
			},
		}
		if s.UserID != nil {
			row = append(row, &linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  *s.UserID,
				Size:  linebot.FlexTextSizeTypeXs,
				Color: colorMuted,
				Wrap:  true,
			})
		}

		contents = append(contents, &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeHorizontal,
			Contents: row,
		})
	}

	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeVertical,
			Contents: contents,
		},
	}
}

// CoachSummary is the evening push with tomorrow's bookings.
func CoachSummary(date string, bookings []model.Slot) *linebot.BubbleContainer {
	contents := []linebot.FlexComponent{
		&linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   "🧑‍🏫 明天課表提醒",
			Weight: linebot.FlexTextWeightTypeBold,
			Size:   linebot.FlexTextSizeTypeLg,
		},
		&linebot.TextComponent{
			Type:  linebot.FlexComponentTypeText,
			Text:  "📅 " + DisplayDate(date),
			Size:  linebot.FlexTextSizeTypeSm,
			Color: "#666666",
		},
	}

	if len(bookings) == 0 {
		contents = append(contents, &linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   "🎉 明天沒有任何課程",
			Margin: linebot.FlexComponentMarginTypeMd,
		})
	} else {
		for _, s := range bookings {
			contents = append(contents, &linebot.TextComponent{
				Type:   linebot.FlexComponentTypeText,
				Text:   "⏰ " + s.StartTime + "–" + s.EndTime + "｜學員",
				Margin: linebot.FlexComponentMarginTypeSm,
			})
		}
		contents = append(contents, &linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   fmt.Sprintf("共 %d 堂課", len(bookings)),
			Size:   linebot.FlexTextSizeTypeSm,
			Color:  "#666666",
			Margin: linebot.FlexComponentMarginTypeMd,
		})
	}

	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeVertical,
			Spacing:  linebot.FlexComponentSpacingTypeSm,
			Contents: contents,
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:  linebot.FlexComponentTypeButton,
					Style: linebot.FlexButtonStyleTypePrimary,
					Action: &linebot.PostbackAction{
						Label: "📋 查看明天詳細課表",
						Data:  DataCoachDay + date,
					},
				},
			},
		},
	}
}
