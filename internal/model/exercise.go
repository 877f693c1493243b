package model

const (
	ExerciseMultipleChoice = "multiple_choice"
	ExerciseFillBlank      = "fill_blank"
)

// swagger:model Exercise
type Exercise struct {
	BaseDocument  `bson:",inline"`
	ExerciseID    int      `bson:"ID_BT" json:"ID_BT" validate:"required,gt=0"`
	Title         string   `bson:"Title" json:"Title"`
	Type          string   `bson:"Type" json:"Type" validate:"omitempty,oneof=multiple_choice fill_blank"`
	Category      string   `bson:"Category" json:"Category"`
	Question      string   `bson:"Question" json:"Question" validate:"required"`
	Options       []string `bson:"Options" json:"Options"`
	CorrectAnswer string   `bson:"CorrectAnswer" json:"CorrectAnswer,omitempty" validate:"required"`
	Explanation   string   `bson:"Explanation" json:"Explanation"`
	TopicID       int      `bson:"ID_CD" json:"ID_CD"`
	Level         string   `bson:"Level" json:"Level"`
	Points        int      `bson:"Points" json:"Points"`
}

func (e *Exercise) NaturalKey() int { return e.ExerciseID }
func (e *Exercise) SetNaturalKey(key int) { e.ExerciseID = key }
