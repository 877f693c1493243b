package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseDocument       `bson:",inline"`
	UserID             string    `bson:"UserId" json:"UserId"`
	Email              string    `bson:"Email" json:"Email"`
	PasswordHash       string    `bson:"PasswordHash" json:"-"`
	FullName           string    `bson:"FullName" json:"FullName"`
	Bio                string    `bson:"Bio" json:"Bio"`
	Avatar             string    `bson:"Avatar" json:"-"`
	AvatarVersion      int64     `bson:"AvatarVersion" json:"-"`
	Role               UserRole  `bson:"Role" json:"Role"`
	Points             int       `bson:"Points" json:"Points"`
	Level              string    `bson:"Level" json:"Level"`
	VocabularyLearned  int       `bson:"VocabularyLearned" json:"VocabularyLearned"`
	GrammarLearned     int       `bson:"GrammarLearned" json:"GrammarLearned"`
	ExercisesCompleted int       `bson:"ExercisesCompleted" json:"ExercisesCompleted"`
	LearnedVocabulary  []int     `bson:"LearnedVocabulary,omitempty" json:"-"`
	LearnedGrammar     []int     `bson:"LearnedGrammar,omitempty" json:"-"`
	LastSeen           time.Time `bson:"LastSeen" json:"LastSeen"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
