package model

// swagger:model Vocabulary
type Vocabulary struct {
	BaseDocument    `bson:",inline"`
	VocabularyID    int     `bson:"ID_TV" json:"ID_TV" validate:"required,gt=0"`
	Word            string  `bson:"Word" json:"Word" validate:"required"`
	Meaning         string  `bson:"Meaning" json:"Meaning" validate:"required"`
	Pronunciation   string  `bson:"Pronunciation" json:"Pronunciation"`
	PartOfSpeech    string  `bson:"PartOfSpeech" json:"PartOfSpeech"`
	Example         string  `bson:"Example" json:"Example"`
	ExampleMeaning  string  `bson:"ExampleMeaning" json:"ExampleMeaning"`
	ImageURL        string  `bson:"ImageUrl" json:"ImageUrl"`
	AudioURL        string  `bson:"AudioUrl" json:"AudioUrl"`
	Level           string  `bson:"Level" json:"Level" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	TopicID         int     `bson:"ID_CD" json:"ID_CD"`
	FavoriteByUsers UserSet `bson:"FavoriteByUsers" json:"FavoriteByUsers"`
}

func (v *Vocabulary) NaturalKey() int { return v.VocabularyID }
func (v *Vocabulary) SetNaturalKey(key int) { v.VocabularyID = key }
func (v *Vocabulary) Favorites() UserSet { return v.FavoriteByUsers }
func (v *Vocabulary) SetFavorites(users UserSet) { v.FavoriteByUsers = users }
