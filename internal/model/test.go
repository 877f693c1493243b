package model

type TestQuestion struct {
	Question      string   `bson:"Question" json:"Question" validate:"required"`
	Options       []string `bson:"Options" json:"Options"`
	CorrectAnswer string   `bson:"CorrectAnswer" json:"CorrectAnswer,omitempty" validate:"required"`
}

// swagger:model Test
type Test struct {
	BaseDocument    `bson:",inline"`
	TestID          int            `bson:"ID_BKT" json:"ID_BKT" validate:"required,gt=0"`
	Title           string         `bson:"Title" json:"Title" validate:"required"`
	Description     string         `bson:"Description" json:"Description"`
	Level           string         `bson:"Level" json:"Level"`
	DurationMinutes int            `bson:"DurationMinutes" json:"DurationMinutes"`
	PassingScore    int            `bson:"PassingScore" json:"PassingScore"`
	Questions       []TestQuestion `bson:"Questions" json:"Questions" validate:"dive"`
}

func (t *Test) NaturalKey() int { return t.TestID }
func (t *Test) SetNaturalKey(key int) { t.TestID = key }
