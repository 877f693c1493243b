package model

import (
	"time"
)

// Activity types understood by the progress counters.
const (
	ActivityVocabulary = "Vocabulary"
	ActivityGrammar    = "Grammar"
	ActivityExercise   = "Exercise"
)

// MaxRecentActivities bounds Progress.LastCompletedItems.
const MaxRecentActivities = 10

// swagger:model Progress
type Progress struct {
	BaseDocument       `bson:",inline"`
	UserID             string              `bson:"UserId" json:"UserId"`
	VocabularyProgress int                 `bson:"VocabularyProgress" json:"VocabularyProgress"`
	GrammarProgress    int                 `bson:"GrammarProgress" json:"GrammarProgress"`
	ExerciseProgress   int                 `bson:"ExerciseProgress" json:"ExerciseProgress"`
	TotalPoints        int                 `bson:"TotalPoints" json:"TotalPoints"`
	Level              string              `bson:"Level" json:"Level"`
	LastCompletedItems []LastCompletedItem `bson:"LastCompletedItems" json:"LastCompletedItems"`
	CompletedTopics    []TopicCompletion   `bson:"CompletedTopics" json:"CompletedTopics"`
}

type LastCompletedItem struct {
	ID           int       `bson:"Id" json:"Id"`
	Type         string    `bson:"Type" json:"Type"`
	Title        string    `bson:"Title" json:"Title"`
	Score        int       `bson:"Score" json:"Score"`
	PointsEarned int       `bson:"PointsEarned" json:"PointsEarned"`
	CompletedAt  time.Time `bson:"CompletedAt" json:"CompletedAt"`
}

type TopicCompletion struct {
	TopicID              int       `bson:"TopicId" json:"TopicId"`
	TopicName            string    `bson:"TopicName" json:"TopicName"`
	CompletionPercentage int       `bson:"CompletionPercentage" json:"CompletionPercentage"`
	CompletedAt          time.Time `bson:"CompletedAt" json:"CompletedAt"`
}

// NewProgress is the zeroed record created on first access.
func NewProgress(userID string) *Progress {
	return &Progress{
		UserID:             userID,
		Level:              LevelA1,
		LastCompletedItems: []LastCompletedItem{},
		CompletedTopics:    []TopicCompletion{},
	}
}
