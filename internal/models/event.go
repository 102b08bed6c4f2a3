package models

import "time"

// Event represents a calendar entry for a council activity.
// Events span an inclusive date range; single-day events have equal dates.
type Event struct {
	ID           int       `json:"id"`           // ID is the unique identifier for the event.
	DateStart    time.Time `json:"dateStart"`    // DateStart is the first day of the event.
	DateEnd      time.Time `json:"dateEnd"`      // DateEnd is the last day of the event.
	TitleKorean  string    `json:"eventKorean"`  // TitleKorean is the event name in Korean.
	TitleEnglish string    `json:"eventEnglish"` // TitleEnglish is the event name in English.
}
