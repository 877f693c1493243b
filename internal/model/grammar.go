package model

// swagger:model Grammar
type Grammar struct {
	BaseDocument    `bson:",inline"`
	GrammarID       int      `bson:"ID_NP" json:"ID_NP" validate:"required,gt=0"`
	Title           string   `bson:"Title" json:"Title" validate:"required"`
	Structure       string   `bson:"Structure" json:"Structure"`
	Explanation     string   `bson:"Explanation" json:"Explanation"`
	Examples        []string `bson:"Examples" json:"Examples"`
	Level           string   `bson:"Level" json:"Level" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	Category        string   `bson:"Category" json:"Category"`
	FavoriteByUsers UserSet  `bson:"FavoriteByUsers" json:"FavoriteByUsers"`
}

func (g *Grammar) NaturalKey() int { return g.GrammarID }
func (g *Grammar) SetNaturalKey(key int) { g.GrammarID = key }
func (g *Grammar) Favorites() UserSet { return g.FavoriteByUsers }
func (g *Grammar) SetFavorites(users UserSet) { g.FavoriteByUsers = users }
