package models

import "time"

// Recommendation — вариант наряда из таблицы рекомендаций.
type Recommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
}

// Priority — источник, из которого взята рекомендация.
type Priority string

const (
	PriorityPrimary   Priority = "primary"
	PrioritySecondary Priority = "secondary"
	PriorityFallback  Priority = "fallback"
)

// Suggestion — рекомендация с пометкой о качестве совпадения.
type Suggestion struct {
	Recommendation
	Priority Priority `json:"priority"`
	Match    string   `json:"match"` // "Perfect Match", "Great Alternative", ...
}

// RecommendationEvent — аналитическое событие о сгенерированных рекомендациях.
type RecommendationEvent struct {
	Event       string    `json:"event"`
	VisitorID   string    `json:"visitor_id,omitempty"`
	BodyType    string    `json:"body_type"`
	Occasion    string    `json:"occasion"`
	Fabric      string    `json:"fabric"`
	ResultCount int       `json:"result_count"`
	At          time.Time `json:"at"`
}
