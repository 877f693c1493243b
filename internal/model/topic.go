package model

// swagger:model Topic
type Topic struct {
	BaseDocument    `bson:",inline"`
	TopicID         int     `bson:"ID_CD" json:"ID_CD" validate:"required,gt=0"`
	Name            string  `bson:"Name" json:"Name" validate:"required"`
	Description     string  `bson:"Description" json:"Description"`
	ImageURL        string  `bson:"ImageUrl" json:"ImageUrl"`
	Level           string  `bson:"Level" json:"Level" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	FavoriteByUsers UserSet `bson:"FavoriteByUsers" json:"FavoriteByUsers"`
}

func (t *Topic) NaturalKey() int { return t.TopicID }
func (t *Topic) SetNaturalKey(key int) { t.TopicID = key }
func (t *Topic) Favorites() UserSet { return t.FavoriteByUsers }
func (t *Topic) SetFavorites(users UserSet) { t.FavoriteByUsers = users }
