package model

import (
	"encoding/json"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// UserSet is a set of user ids. It is stored as an array so the store can
// apply $addToSet / $pull to it directly.
type UserSet map[string]struct{}

func NewUserSet(ids ...string) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s UserSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s *UserSet) Add(id string) {
	if *s == nil {
		*s = UserSet{}
	}
	(*s)[id] = struct{}{}
}

func (s UserSet) Remove(id string) {
	delete(s, id)
}

func (s UserSet) Len() int {
	return len(s)
}

// Slice returns the members sorted, so encoded documents are stable.
func (s UserSet) Slice() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s UserSet) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.Slice())
}

func (s *UserSet) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*s = UserSet{}
	if t == bsontype.Null || t == bsontype.Undefined {
		return nil
	}

	var ids []string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&ids); err != nil {
		return err
	}
	for _, id := range ids {
		(*s)[id] = struct{}{}
	}
	return nil
}

func (s UserSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *UserSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewUserSet(ids...)
	return nil
}
